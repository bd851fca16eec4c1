// README: Entry point; loads config, wires services, starts the HTTP server.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"roadready/internal/config"
	"roadready/internal/geo"
	httptransport "roadready/internal/http"
	"roadready/internal/infra"
	"roadready/internal/modules/addon"
	"roadready/internal/modules/booking"
	"roadready/internal/modules/coupon"
	"roadready/internal/modules/pricing"
	"roadready/internal/modules/testcenter"
)

const currency = "CAD"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		log.Fatal(err)
	}
	defer dbPool.Close()

	redisClient := infra.NewRedis(cfg.Redis.Addr)
	defer redisClient.Close()

	geoSvc, err := geo.NewService(cfg.Maps.APIKey)
	if err != nil {
		log.Fatalf("maps init: %v", err)
	}

	pricingStore := pricing.NewStore(dbPool)
	rates, err := pricingStore.LoadRates(ctx)
	if err != nil {
		log.Printf("pickup rates load: %v (using configured defaults)", err)
		rates = pricing.PickupRates{
			TierKm:        cfg.Pricing.TierKm,
			FirstCentsKm:  cfg.Pricing.FirstTierCentsKm,
			ExcessCentsKm: cfg.Pricing.ExcessTierCentsKm,
		}
	}
	engine := pricing.NewEngine(rates, currency)

	testCenterSvc := testcenter.NewService(testcenter.NewStore(dbPool))
	addonSvc := addon.NewService(addon.NewStore(dbPool))
	couponSvc := coupon.NewService(coupon.NewStore(dbPool), coupon.NewCache(redisClient))

	quoter := booking.NewQuoter(engine, testCenterSvc, addonSvc, couponSvc)
	bookingSvc := booking.NewService(booking.NewStore(dbPool), quoter, cfg.Pricing.RefundPercent, currency)

	router := httptransport.NewRouter(httptransport.RouterDeps{
		TestCenters: testCenterSvc,
		Addons:      addonSvc,
		Coupons:     couponSvc,
		Geo:         geoSvc,
		Quoter:      quoter,
		Bookings:    bookingSvc,
		AdminToken:  cfg.HTTP.AdminToken,
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: router}

	go func() {
		log.Printf("listening on %s", cfg.HTTP.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("http server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
