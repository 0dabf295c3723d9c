package user

type RegisterDTO struct {
	Username string  `json:"username" form:"username" binding:"required,min=3,max=50"`
	Password string  `json:"password" form:"password" binding:"required,min=8"`
	Email    *string `json:"email,omitempty" form:"email" binding:"omitempty,email"`
	FullName *string `json:"full_name,omitempty" form:"full_name"`
	Role     string  `json:"role" form:"role" binding:"required,oneof=client freelancer"`
}

type LoginDTO struct {
	Username string `json:"username" form:"username" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

type UpdateUserDTO struct {
	OldPassword *string `json:"old_password,omitempty" form:"old_password"`
	Password    *string `json:"password,omitempty" form:"password" binding:"omitempty,min=8"`
	Email       *string `json:"email,omitempty" form:"email" binding:"omitempty,email"`
	FullName    *string `json:"full_name,omitempty" form:"full_name"`
}
