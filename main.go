package main

import (
	"context"
	"deskbot/internal/adapters/catalog"
	"deskbot/internal/adapters/handler"
	"deskbot/internal/adapters/sender"
	"deskbot/internal/core/domain/command"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

func main() {
	log.Info().Msg("starting deskbot...")

	viper.AddConfigPath(".")
	viper.SetConfigType("toml")
	viper.SetDefault("discord.command_prefix", "!")
	viper.SetDefault("catalog.base_url", "https://www.zatrolene-hry.cz/api")
	viper.SetDefault("handler.timeout", "15s")
	viper.SetDefault("games.result_limit", command.DefaultResultLimit)

	log.Info().Msg("reading config file...")
	err := viper.ReadInConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("could not read config file")
	}

	var logLevel zerolog.Level

	switch viper.GetString("bot.log_level") {
	case "info":
		logLevel = zerolog.InfoLevel
	case "debug":
		logLevel = zerolog.DebugLevel
	default:
		logLevel = zerolog.InfoLevel
	}

	zerolog.SetGlobalLevel(logLevel)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	token := viper.GetString("discord.bot_token")
	if token == "" {
		log.Fatal().Msg("missing discord.bot_token in config")
	}

	session, err := discordgo.New("Bot " + token)
	if err != nil {
		log.Panic().Err(err).Msg("failed initializing discord session")
	}

	session.Identify.Intents = discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages |
		discordgo.IntentsMessageContent

	s := sender.NewDiscordSender(session)
	catalogClient := catalog.NewClient(
		viper.GetString("catalog.base_url"),
		viper.GetString("catalog.api_key"))

	commandRegistry := &command.Registry{}
	commandRegistry.Register(command.NewPing(s, "ping"))
	commandRegistry.Register(command.NewInfo(commandRegistry, s, "info"))
	commandRegistry.Register(command.NewGames(catalogClient, s, "games", viper.GetInt("games.result_limit")))
	commandRegistry.Register(command.NewGameInfo(catalogClient, s, command.ParseNumericID, "gameinfo"))
	commandRegistry.Register(command.NewCategories(catalogClient, s, "categories"))
	commandRegistry.Register(command.NewHelp(commandRegistry, s, "help"))

	handlerTimeout, err := time.ParseDuration(viper.GetString("handler.timeout"))
	if err != nil {
		log.Panic().Err(err).Msg("invalid timeout for handler in config")
	}

	prefix := viper.GetString("discord.command_prefix")
	commandHandler := handler.NewCommand(commandRegistry, s, prefix, handlerTimeout)
	session.AddHandler(commandHandler.Handle)

	if err := session.Open(); err != nil {
		log.Fatal().Err(err).Msg("failed opening discord gateway")
	}
	defer session.Close()

	if err := session.UpdateGameStatus(0, prefix+"help for commands"); err != nil {
		log.Warn().Err(err).Msg("failed to set presence")
	}

	log.Info().Msg("bot listening")
	<-ctx.Done()
	log.Info().Msg("shutting down")
}
