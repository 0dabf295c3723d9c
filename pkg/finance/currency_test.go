package finance

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestConvertPivotsThroughUSD(t *testing.T) {
	rates := DefaultRates()

	got, err := rates.Convert(100, "EUR", "USD")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(got-110) > 1e-9 {
		t.Fatalf("expected 110 USD, got %f", got)
	}

	got, err = rates.Convert(100, "EUR", "GBP")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(got-100*1.1/1.27) > 1e-9 {
		t.Fatalf("expected %f GBP, got %f", 100*1.1/1.27, got)
	}
}

func TestConvertUnknownCurrency(t *testing.T) {
	rates := DefaultRates()
	if _, err := rates.Convert(100, "XYZ", "USD"); !errors.Is(err, ErrUnknownCurrency) {
		t.Fatalf("expected ErrUnknownCurrency, got %v", err)
	}
	if _, err := rates.Convert(100, "USD", "XYZ"); !errors.Is(err, ErrUnknownCurrency) {
		t.Fatalf("expected ErrUnknownCurrency, got %v", err)
	}
}

func TestConvertRoundTrip(t *testing.T) {
	rates := DefaultRates()
	codes := []string{"USD", "EUR", "GBP", "XAF", "NGN", "GHS", "KES", "ZAR"}

	for _, from := range codes {
		for _, to := range codes {
			there, err := rates.Convert(250, from, to)
			if err != nil {
				t.Fatalf("%s->%s: %v", from, to, err)
			}
			back, err := rates.Convert(there, to, from)
			if err != nil {
				t.Fatalf("%s->%s: %v", to, from, err)
			}
			if math.Abs(Round2(back)-250) > 0.01 {
				t.Fatalf("round trip %s->%s->%s drifted: got %f", from, to, from, back)
			}
		}
	}
}

func TestConvertOrFallback(t *testing.T) {
	rates := DefaultRates()

	got, fellBack := rates.convertOrFallback(100, "XYZ", "USD")
	if !fellBack {
		t.Fatalf("expected fallback for unknown currency")
	}
	if got != 100 {
		t.Fatalf("expected 1:1 fallback to keep 100, got %f", got)
	}

	got, fellBack = rates.convertOrFallback(100, "EUR", "USD")
	if fellBack {
		t.Fatalf("did not expect fallback for EUR")
	}
	if math.Abs(got-110) > 1e-9 {
		t.Fatalf("expected 110, got %f", got)
	}
}

func TestLoadRates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rates.yaml")
	if err := os.WriteFile(path, []byte("EUR: 1.2\nMAD: 0.1\n"), 0o644); err != nil {
		t.Fatalf("write rates file: %v", err)
	}

	rates, err := LoadRates(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rates["EUR"] != 1.2 {
		t.Fatalf("expected EUR override 1.2, got %f", rates["EUR"])
	}
	if rates["MAD"] != 0.1 {
		t.Fatalf("expected MAD 0.1, got %f", rates["MAD"])
	}
	if rates["USD"] != 1 {
		t.Fatalf("expected built-in USD rate preserved, got %f", rates["USD"])
	}

	if err := os.WriteFile(path, []byte("EUR: -1\n"), 0o644); err != nil {
		t.Fatalf("write rates file: %v", err)
	}
	if _, err := LoadRates(path); err == nil {
		t.Fatalf("expected error for non-positive rate")
	}
}

func TestRound2(t *testing.T) {
	if got := Round2(10.006); got != 10.01 {
		t.Fatalf("expected 10.01, got %f", got)
	}
	if got := Round2(10.004); got != 10.0 {
		t.Fatalf("expected 10.00, got %f", got)
	}
}
