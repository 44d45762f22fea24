package main

import (
	"flag"
	"strconv"

	"github.com/gofiber/fiber/v2"

	apiHttp "github.com/amanagarwal13/Binanace-Trading/internal/api/http"
	"github.com/amanagarwal13/Binanace-Trading/internal/controllers"
	"github.com/amanagarwal13/Binanace-Trading/internal/exchange"
	"github.com/amanagarwal13/Binanace-Trading/internal/repository/postgres"
)

func main() {
	var app App
	var confFileName string

	flag.StringVar(&confFileName, "config", ".env", "")
	flag.Parse()

	app.initLogger()

	if err := app.loadConfig(confFileName); err != nil {
		app.Logger.Fatal(err)
	}

	if err := app.initTgBot(); err != nil {
		app.Logger.Fatal(err)
	}

	if err := app.initDB(); err != nil {
		app.Logger.Fatal(err)
	}

	app.initHTTPClient()

	clientController := controllers.NewClientController(
		app.HTTPClient,
		app.Config.BinanceApiKey,
		app.Logger,
	)
	cryptoController := controllers.NewCryptoController(
		app.Config.BinanceSecretKey,
	)

	binance := exchange.NewExchange(
		clientController,
		cryptoController,
		app.Config.BinanceUrl,
		app.Logger,
	)

	var priceRepo postgres.PriceRepo
	if app.DB != nil {
		priceRepo = postgres.NewPriceRepository(app.DB)
	}

	var tgm controllers.TgmCtrl
	if app.TGM != nil {
		chatID, err := strconv.ParseInt(app.Config.TelegramChatID, 10, 64)
		if err != nil {
			app.Logger.Fatal(err)
		}

		tgm = controllers.NewTgmController(app.TGM, chatID)
	}

	f := fiber.New()

	middleware := apiHttp.NewMiddleware("trading_dashboard", f)
	middleware.UseMetrics()

	handler := apiHttp.NewHandler(
		binance,
		priceRepo,
		tgm,
		apiHttp.NewMetrics(),
		app.Config.SupportedSymbols,
		app.Logger,
	)

	apiHttp.RegisterHTTPEndpoints(f, handler)

	app.Logger.Infof("listening on :%s", app.Config.Port)

	if err := f.Listen(":" + app.Config.Port); err != nil {
		app.Logger.Fatal(err)
	}
}
