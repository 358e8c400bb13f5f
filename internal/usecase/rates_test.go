package usecase

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	domainErrors "github.com/polkiloo/clientportal/internal/domain/errors"
	"github.com/polkiloo/clientportal/internal/domain/model"
	testhelpers "github.com/polkiloo/clientportal/internal/test"
)

var refreshTime = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func newRateUseCase(repo *testhelpers.RateRepositoryStub, fx *testhelpers.FXClientStub) *RateUseCase {
	uc := NewRateUseCase(repo, fx, discardLogger())
	uc.now = func() time.Time { return refreshTime }
	return uc
}

func TestParseRateMode(t *testing.T) {
	cases := map[string]model.RateMode{
		"":       model.RateModeGet,
		"get":    model.RateModeGet,
		"update": model.RateModeUpdate,
	}
	for in, want := range cases {
		got, err := ParseRateMode(in)
		if err != nil || got != want {
			t.Fatalf("ParseRateMode(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := ParseRateMode("refresh"); !errors.Is(err, domainErrors.ErrInvalidRateMode) {
		t.Fatalf("expected invalid mode error, got %v", err)
	}
}

func TestRateUseCaseUpdateUsesProviderAndDefaults(t *testing.T) {
	repo := testhelpers.NewRateRepositoryStub()
	fx := &testhelpers.FXClientStub{Rates: model.Rates{"INR": 84.1}}
	uc := newRateUseCase(repo, fx)

	rates, err := uc.Rates(context.Background(), model.RateModeUpdate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := model.Rates{"USD": 1, "INR": 84.1, "AUD": 1.52, "EUR": 0.92, "GBP": 0.79, "CAD": 1.36}
	if len(rates) != len(want) {
		t.Fatalf("expected %d rates, got %v", len(want), rates)
	}
	for code, rate := range want {
		if rates[code] != rate {
			t.Errorf("expected %s=%v, got %v", code, rate, rates[code])
		}
	}

	if len(repo.Rates) != len(model.TrackedCurrencies) {
		t.Fatalf("expected %d persisted rates, got %d", len(model.TrackedCurrencies), len(repo.Rates))
	}
	for code, rate := range want {
		if code == model.BaseCurrency {
			continue
		}
		stored := repo.Rates[code]
		if stored.Rate != rate || stored.BaseCurrency != "USD" || !stored.LastUpdated.Equal(refreshTime) {
			t.Errorf("unexpected stored %s: %+v", code, stored)
		}
	}
}

func TestRateUseCaseUpdateRejectsUnusableProviderValues(t *testing.T) {
	repo := testhelpers.NewRateRepositoryStub()
	fx := &testhelpers.FXClientStub{Rates: model.Rates{"INR": 0, "AUD": -1, "EUR": math.NaN(), "GBP": math.Inf(1), "CAD": 1.4}}
	uc := newRateUseCase(repo, fx)

	rates, err := uc.Refresh(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rates["INR"] != 83.25 || rates["AUD"] != 1.52 || rates["EUR"] != 0.92 || rates["GBP"] != 0.79 {
		t.Fatalf("expected defaults for unusable values, got %v", rates)
	}
	if rates["CAD"] != 1.4 {
		t.Fatalf("expected provider CAD, got %v", rates["CAD"])
	}
}

func TestRateUseCaseUpdateSkipsFailedWrites(t *testing.T) {
	repo := testhelpers.NewRateRepositoryStub()
	repo.FailCurrencies = map[string]error{"EUR": errors.New("write failed")}
	fx := &testhelpers.FXClientStub{Rates: model.Rates{"INR": 84.1, "EUR": 0.93}}
	uc := newRateUseCase(repo, fx)

	rates, err := uc.Refresh(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rates["EUR"] != 0.93 {
		t.Fatalf("expected full mapping regardless of writes, got %v", rates)
	}
	if len(repo.Upserts) != len(model.TrackedCurrencies) {
		t.Fatalf("expected a write attempt per currency, got %d", len(repo.Upserts))
	}
	if _, ok := repo.Rates["EUR"]; ok {
		t.Fatal("did not expect failed currency to be stored")
	}
	for _, code := range []string{"INR", "AUD", "GBP", "CAD"} {
		if _, ok := repo.Rates[code]; !ok {
			t.Errorf("expected %s to be stored despite EUR failure", code)
		}
	}
}

func TestRateUseCaseUpdateProviderFailure(t *testing.T) {
	repo := testhelpers.NewRateRepositoryStub()
	fx := &testhelpers.FXClientStub{Err: domainErrors.ErrUpstream}
	uc := newRateUseCase(repo, fx)

	if _, err := uc.Rates(context.Background(), model.RateModeUpdate); !errors.Is(err, domainErrors.ErrUpstream) {
		t.Fatalf("expected upstream error, got %v", err)
	}
	if len(repo.Upserts) != 0 {
		t.Fatalf("expected nothing persisted, got %d writes", len(repo.Upserts))
	}
}

func TestRateUseCaseGetOnEmptyStoreEqualsUpdate(t *testing.T) {
	fxRates := model.Rates{"INR": 84.1, "GBP": 0.8}

	coldRepo := testhelpers.NewRateRepositoryStub()
	coldFX := &testhelpers.FXClientStub{Rates: fxRates}
	got, err := newRateUseCase(coldRepo, coldFX).Rates(context.Background(), model.RateModeGet)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if coldFX.Calls != 1 {
		t.Fatalf("expected cold cache to hit provider once, got %d", coldFX.Calls)
	}

	want, err := newRateUseCase(testhelpers.NewRateRepositoryStub(), &testhelpers.FXClientStub{Rates: fxRates}).
		Rates(context.Background(), model.RateModeUpdate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(got) != len(want) {
		t.Fatalf("expected same shape, got %v want %v", got, want)
	}
	for code, rate := range want {
		if got[code] != rate {
			t.Errorf("expected %s=%v, got %v", code, rate, got[code])
		}
	}
	if len(coldRepo.Rates) != len(model.TrackedCurrencies) {
		t.Fatalf("expected cold get to populate cache, got %d rows", len(coldRepo.Rates))
	}
}

func TestRateUseCaseGetServesCache(t *testing.T) {
	repo := testhelpers.NewRateRepositoryStub()
	repo.Rates["INR"] = model.ExchangeRate{BaseCurrency: "USD", TargetCurrency: "INR", Rate: 82}
	repo.Rates["EUR"] = model.ExchangeRate{BaseCurrency: "USD", TargetCurrency: "EUR", Rate: 0.9}
	fx := &testhelpers.FXClientStub{Err: errors.New("must not be called")}
	uc := newRateUseCase(repo, fx)

	rates, err := uc.Rates(context.Background(), model.RateModeGet)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fx.Calls != 0 {
		t.Fatal("expected warm cache to skip provider")
	}
	if len(rates) != 3 || rates["USD"] != 1 || rates["INR"] != 82 || rates["EUR"] != 0.9 {
		t.Fatalf("expected persisted entries only plus USD, got %v", rates)
	}
}

func TestRateUseCaseGetStoreFailure(t *testing.T) {
	repo := testhelpers.NewRateRepositoryStub()
	repo.ListErr = errors.New("db down")
	uc := newRateUseCase(repo, &testhelpers.FXClientStub{})

	if _, err := uc.Rates(context.Background(), model.RateModeGet); err == nil {
		t.Fatal("expected error")
	}
	if _, err := uc.Rates(context.Background(), "bogus"); !errors.Is(err, domainErrors.ErrInvalidRateMode) {
		t.Fatalf("expected invalid mode error, got %v", err)
	}
}
