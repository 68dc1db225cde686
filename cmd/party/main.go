package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/palemoky/party-tag/internal/apperrors"
	"github.com/palemoky/party-tag/internal/config"
	"github.com/palemoky/party-tag/internal/game/round"
	"github.com/palemoky/party-tag/internal/logger"
	"github.com/palemoky/party-tag/internal/sound"
	"github.com/palemoky/party-tag/internal/storage"
	"github.com/palemoky/party-tag/internal/ui"
)

func main() {
	os.Exit(realMain())
}

// realMain 返回进程退出码，保证退出前执行所有 defer
func realMain() (code int) {
	configPath := flag.String("config", "configs/config.yaml", "配置文件路径")
	mode := flag.String("mode", "", "游戏模式 tag / congelados，覆盖配置文件")
	players := flag.Int("players", 0, "在场玩家数 1-4，覆盖配置文件")
	flag.Parse()

	// 加载配置
	cfg, cfgErr := config.Load(*configPath)
	if cfgErr != nil {
		cfg = config.Default()
	}
	if *mode != "" {
		cfg.Game.Mode = *mode
	}
	if *players != 0 {
		cfg.Game.ActivePlayers = *players
	}

	log, err := logger.Init(cfg.Log.Dir, cfg.Log.Level)
	if err != nil {
		log = logger.Console(cfg.Log.Level)
		log.Warn().Err(err).Msg("无法创建日志文件，输出到终端")
	}
	defer logger.Close()
	defer func() {
		if r := recover(); r != nil {
			logger.LogPanic(log, r)
			fmt.Fprintf(os.Stderr, "程序异常退出，详情见 %s\n", logger.GetLogPath())
			code = 1
		}
	}()
	if cfgErr != nil {
		log.Warn().Err(cfgErr).Str("path", *configPath).Msg("加载配置文件失败，使用默认配置")
	}

	if err := run(cfg, log); err != nil {
		log.Error().Err(err).Msg("运行失败")
		fmt.Fprintf(os.Stderr, "启动失败: %v\n", err)
		return 1
	}
	return 0
}

func run(cfg *config.Config, log zerolog.Logger) error {
	settings, err := round.SettingsFrom(cfg.Game)
	if err != nil {
		return err
	}

	opts := []round.Option{round.WithLogger(log)}

	if cfg.Redis.Enabled {
		if store, closeFn := openHistory(cfg.Redis, settings.Mode, log); store != nil {
			defer closeFn()
			opts = append(opts,
				round.WithHistory(store),
				round.WithObserver(storage.NewRecorder(store, log)),
			)
		}
	}

	if cfg.Sound.Enabled {
		sm := sound.NewSoundManager(cfg.Sound.Dir, log)
		if err := sm.Init(); err != nil {
			log.Warn().Err(err).Msg("音效初始化失败，静音运行")
		} else {
			defer sm.Close()
			log.Info().Int("loaded", sm.Loaded()).Msg("🔔 音效已加载")
			opts = append(opts, round.WithObserver(sound.NewCuePlayer(sm)))
		}
	}

	m, err := round.New(settings, opts...)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	err = m.Start(ctx)
	cancel()
	if errors.Is(err, apperrors.ErrNoPlayers) {
		return fmt.Errorf("没有在场玩家: %w", err)
	}
	if err != nil {
		return err
	}

	p := tea.NewProgram(ui.New(m, ui.DefaultFrame), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("终端界面出错: %w", err)
	}

	if winners := m.Finalize(); len(winners) > 0 {
		fmt.Println("🏆 获胜者:", winners)
	}
	return nil
}

// openHistory 连接 Redis，失败时返回 nil，游戏不带历史积分运行
func openHistory(rc config.RedisConfig, mode round.Mode, log zerolog.Logger) (*storage.HistoryStore, func()) {
	client := redis.NewClient(&redis.Options{
		Addr:     rc.Addr,
		Password: rc.Password,
		DB:       rc.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn().Err(err).Str("addr", rc.Addr).Msg("连接 Redis 失败，不使用历史积分")
		_ = client.Close()
		return nil, nil
	}

	log.Info().Str("addr", rc.Addr).Msg("✅ Redis 已连接")
	return storage.NewHistoryStore(client, mode.String()), func() { _ = client.Close() }
}
