//go:build integration
// +build integration

package integration

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/worklane/worklane-go/internal/domain/contract"
	"github.com/worklane/worklane-go/internal/domain/payment"
	"github.com/worklane/worklane-go/pkg/response"
)

func TestContractLifecycle_Integration(t *testing.T) {
	ctx := GetTestContext()
	client := NewHTTPClient(ctx.Router, ctx.ClientToken)
	freelancer := NewHTTPClient(ctx.Router, ctx.FreelancerToken)

	var freelancerUID uint
	t.Run("lookup freelancer uid", func(t *testing.T) {
		resp, err := freelancer.GET("/users/me")
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var me struct {
			UID uint `json:"uid"`
		}
		require.NoError(t, resp.DecodeJSON(&me))
		freelancerUID = me.UID
	})

	var ct contract.Contract
	t.Run("client creates contract", func(t *testing.T) {
		resp, err := client.POST("/contracts", map[string]interface{}{
			"project_id":    "proj-integration",
			"freelancer_id": freelancerUID,
			"amount":        3000,
			"currency":      "USD",
			"payment_type":  "fixed",
			"start_date":    "2026-08-01",
			"milestones": []map[string]interface{}{
				{"title": "Design", "amount": 1000},
				{"title": "Build", "amount": 2000, "due_date": "2026-09-15"},
			},
		})
		require.NoError(t, err)
		require.Equal(t, http.StatusCreated, resp.StatusCode, string(resp.Body))

		require.NoError(t, resp.DecodeJSON(&ct))
		assert.Equal(t, contract.StatusPendingAcceptance, ct.Status)
		assert.Len(t, ct.Milestones, 2)
	})

	t.Run("freelancer cannot create contracts", func(t *testing.T) {
		resp, err := freelancer.POST("/contracts", map[string]interface{}{
			"project_id":    "proj-x",
			"freelancer_id": freelancerUID,
			"amount":        100,
			"payment_type":  "fixed",
			"start_date":    "2026-08-01",
		})
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("freelancer accepts", func(t *testing.T) {
		resp, err := freelancer.PUT("/contracts/"+ct.ContractID+"/status/active", map[string]interface{}{
			"reason": "accepted offer",
		})
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode, string(resp.Body))

		require.NoError(t, resp.DecodeJSON(&ct))
		assert.Equal(t, contract.StatusActive, ct.Status)
	})

	t.Run("completing with open milestones is rejected", func(t *testing.T) {
		resp, err := client.PUT("/contracts/"+ct.ContractID+"/status/completed", nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	var escrow payment.Payment
	t.Run("client funds first milestone", func(t *testing.T) {
		resp, err := client.POST("/payments/fund", map[string]interface{}{
			"contract_id":  ct.ContractID,
			"milestone_id": ct.Milestones[0].ID,
		})
		require.NoError(t, err)
		require.Equal(t, http.StatusCreated, resp.StatusCode, string(resp.Body))

		require.NoError(t, resp.DecodeJSON(&escrow))
		assert.Equal(t, payment.StatusEscrowed, escrow.Status)
		assert.Equal(t, 1000.0, escrow.Gross)
	})

	t.Run("milestone workflow to approval", func(t *testing.T) {
		m := ct.Milestones[0].ID

		resp, err := freelancer.PUT("/contracts/"+ct.ContractID+"/milestones/"+m+"/status/active", nil)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode, string(resp.Body))

		resp, err = freelancer.PUT("/contracts/"+ct.ContractID+"/milestones/"+m+"/status/in_review", nil)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode, string(resp.Body))

		resp, err = client.PUT("/contracts/"+ct.ContractID+"/milestones/"+m+"/status/completed", nil)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode, string(resp.Body))

		require.NoError(t, resp.DecodeJSON(&ct))
		assert.Equal(t, contract.MilestoneCompleted, ct.Milestones[0].Status)
		assert.Equal(t, 50, ct.Progress)
	})

	t.Run("escrow released on approval", func(t *testing.T) {
		resp, err := client.GET("/payments/" + escrow.ID)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var p payment.Payment
		require.NoError(t, resp.DecodeJSON(&p))
		assert.Equal(t, payment.StatusCompleted, p.Status)
	})

	t.Run("client dashboard reflects ledger", func(t *testing.T) {
		resp, err := client.GET("/dashboard/client")
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode, string(resp.Body))

		var dash response.DashboardResponse
		require.NoError(t, resp.DecodeJSON(&dash))
		require.NotEmpty(t, dash.Contracts)

		var found bool
		for _, cv := range dash.Contracts {
			if cv.Breakdown.TotalAmount == 3000 {
				found = true
				assert.Equal(t, 1000.0, cv.Breakdown.AmountPaid)
				assert.Equal(t, 2000.0, cv.Breakdown.AmountPending)
			}
		}
		assert.True(t, found)
	})

	t.Run("audit log requires admin", func(t *testing.T) {
		resp, err := client.GET("/audit/logs")
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)

		admin := NewHTTPClient(ctx.Router, ctx.AdminToken)
		resp, err = admin.GET("/audit/logs")
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}
