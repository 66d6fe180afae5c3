package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/jonathan/resume-craft/internal/auth"
	"github.com/jonathan/resume-craft/internal/config"
	"github.com/jonathan/resume-craft/internal/db"
	"github.com/jonathan/resume-craft/internal/localstore"
	"github.com/jonathan/resume-craft/internal/remote"
	"github.com/jonathan/resume-craft/internal/store"
	"github.com/jonathan/resume-craft/internal/types"
)

// session is one CLI invocation's view of the resume: a loaded store plus the
// resources backing it.
type session struct {
	cfg      config.Config
	store    *store.Store
	identity *types.Identity
	database *db.DB
}

// loadConfig resolves configuration from the config file, environment and flags.
// Flags win over the file, the file wins over the environment.
func loadConfig() (config.Config, error) {
	var cfg config.Config
	if configFile != "" {
		fileCfg, err := config.LoadConfig(configFile)
		if err != nil {
			return config.Config{}, err
		}
		cfg = *fileCfg
	}

	if dataDir != "" {
		cfg.DataDir = dataDir
	}
	if userToken != "" {
		cfg.IdentityToken = userToken
	}
	if verbose {
		cfg.Verbose = true
	}

	cfg.ApplyEnv()
	cfg = cfg.MergeWithDefaults(config.Defaults())

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// openSession builds the store from configuration and loads the persisted resume.
func openSession(ctx context.Context) (*session, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	sess := &session{cfg: cfg}

	if cfg.IdentityToken != "" {
		identityCfg, err := config.NewIdentityConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to load identity config: %w", err)
		}
		identity, err := auth.NewTokenService(identityCfg).ParseIdentity(cfg.IdentityToken)
		if err != nil {
			return nil, fmt.Errorf("invalid identity token: %w", err)
		}
		sess.identity = identity
	}

	var backend remote.Backend
	if sess.identity != nil {
		backend, err = sess.openRemote(ctx)
		if err != nil {
			sess.close()
			return nil, err
		}
	}

	logger := log.New(os.Stderr, "", log.LstdFlags)
	sess.store = store.New(store.Options{
		Slot:       localstore.NewFileSlot(cfg.DataDir),
		Remote:     backend,
		StorageKey: cfg.StorageKey,
		Debounce:   cfg.Debounce(),
		Context:    ctx,
		Logger:     logger,
	})

	if cfg.Verbose {
		logger.Printf("[session] data dir %s, remote %s, signed in: %t", cfg.DataDir, cfg.Remote.Backend, sess.identity != nil)
	}

	sess.store.Load(ctx, sess.identity)
	return sess, nil
}

// openRemote connects the backend named in the configuration.
func (s *session) openRemote(ctx context.Context) (remote.Backend, error) {
	rc := s.cfg.Remote
	switch rc.Backend {
	case config.BackendPostgres:
		return s.openPostgres(ctx)
	case config.BackendS3:
		return remote.NewS3Backend(ctx, s3Config(rc))
	case config.BackendMirror:
		primary, err := s.openPostgres(ctx)
		if err != nil {
			return nil, err
		}
		replica, err := remote.NewS3Backend(ctx, s3Config(rc))
		if err != nil {
			return nil, err
		}
		return remote.NewMirror(primary, replica), nil
	default:
		return nil, nil
	}
}

func (s *session) openPostgres(ctx context.Context) (remote.Backend, error) {
	database, err := db.Connect(ctx, s.cfg.Remote.DatabaseURL)
	if err != nil {
		return nil, err
	}
	s.database = database
	return remote.NewPostgresBackend(database), nil
}

func s3Config(rc config.RemoteConfig) remote.S3Config {
	return remote.S3Config{
		Bucket:    rc.S3Bucket,
		Region:    rc.S3Region,
		Prefix:    rc.S3Prefix,
		Endpoint:  rc.S3Endpoint,
		AccessKey: rc.S3AccessKey,
		SecretKey: rc.S3SecretKey,
	}
}

// close flushes any pending save and releases the database.
func (s *session) close() {
	if s.store != nil {
		s.store.Close()
	}
	if s.database != nil {
		s.database.Close()
	}
}

// withSession opens a session, runs fn, then closes the session so any edit
// fn made is saved before the process exits.
func withSession(fn func(*session) error) error {
	ctx := context.Background()
	sess, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer sess.close()
	return fn(sess)
}
