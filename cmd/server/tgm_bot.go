package main

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// initTgBot sets up the optional Telegram notification bot.
func (a *App) initTgBot() error {
	if a.Config.TelegramApiToken == "" {
		return nil
	}

	bot, err := tgbotapi.NewBotAPI(a.Config.TelegramApiToken)
	if err != nil {
		return err
	}

	a.TGM = bot

	return nil
}
