/* main.go
 * The "main" method for running the bot. For details about the bot see `readme.md`
 * Usage: go run main.go -db="<database>" -resultsChannel="<id>" -updateChannel="<id>"
 */

package main

import (
	"context"
	"flag"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	api "clancup-bot/api/api"
	"clancup-bot/bot"
	"clancup-bot/web"
)

func main() {
	err := godotenv.Load()

	//Flags
	dbPtr := flag.String("db", "clancup", "Name of the mongo database holding the tournament")
	resultsChannelPtr := flag.String("resultsChannel", "", "Channel id the game posts match announcements to; empty accepts results from any channel")
	registrationChannelPtr := flag.String("registrationChannel", "", "Channel id where teams register")
	updateChannelPtr := flag.String("updateChannel", "", "Channel id for the persistent teams/results messages; empty disables them")
	webAddrPtr := flag.String("webAddr", "", "Listen address for the read-only HTTP views, e.g. :8080; empty disables the server")

	flag.Parse()

	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if err != nil {
		logger.Warn("no .env file found, relying on the process environment")
	}

	discordToken := os.Getenv("DISCORD_BOT_TOKEN")
	if discordToken == "" {
		logger.Fatal("DISCORD_BOT_TOKEN is not set")
	}

	apiPtr, err := api.NewAPI(*dbPtr, os.Getenv("MONGO_URI"), logger)
	if err != nil {
		logger.Fatalf("failed to initialize API: %v", err)
	}
	defer func() {
		if err = apiPtr.Store.GetClient().Disconnect(context.TODO()); err != nil {
			logger.WithError(err).Error("failed to disconnect from mongo")
		}
	}()

	if *webAddrPtr != "" {
		go func() {
			if err := web.Start(web.Config{Addr: *webAddrPtr, API: apiPtr, Logger: logger}); err != nil {
				logger.WithError(err).Error("web server stopped")
			}
		}()
	}

	//Init bot and run
	channels := bot.ChannelConfig{
		ResultsChannelID:      *resultsChannelPtr,
		RegistrationChannelID: *registrationChannelPtr,
		UpdateChannelID:       *updateChannelPtr,
	}
	b, err := bot.NewBot(discordToken, apiPtr, channels, logger)
	if err != nil {
		logger.Fatalf("failed to initialize bot: %v", err)
	}
	if err := b.Run(); err != nil {
		logger.Fatalf("bot exited: %v", err)
	}
}
