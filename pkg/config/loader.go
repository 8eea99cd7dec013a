package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// configCache stores parsed configuration values keyed by type name.
type configCache struct {
	mu     sync.RWMutex
	values map[string]any
	onces  map[string]*sync.Once
}

var (
	globalCache = &configCache{
		values: make(map[string]any),
		onces:  make(map[string]*sync.Once),
	}

	defaultEnvLoaded sync.Once
)

// Load parses environment variables into v using its `env` struct tags.
// Each configuration type is parsed once; later calls return the cached copy.
//
// The default .env file in the working directory is loaded on first use if
// it exists.
//
// Example:
//
//	var cfg validator.Config
//	if err := config.Load(&cfg); err != nil {
//		// Handle error
//	}
func Load[T any](v *T) error {
	defaultEnvLoaded.Do(func() {
		// the default .env file is optional
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	typeName := getTypeName[T]()

	if loadCached(typeName, v) {
		return nil
	}

	globalCache.mu.Lock()
	once, exists := globalCache.onces[typeName]
	if !exists {
		once = new(sync.Once)
		globalCache.onces[typeName] = once
	}
	globalCache.mu.Unlock()

	var err error
	once.Do(func() {
		err = parseAndStore(typeName, v)
	})
	if err != nil {
		// allow a later call to retry after the environment is fixed
		globalCache.mu.Lock()
		delete(globalCache.onces, typeName)
		globalCache.mu.Unlock()
		return err
	}

	if loadCached(typeName, v) {
		return nil
	}

	return ErrConfigNotLoaded
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
}

// ForceReload parses v again, ignoring and replacing any cached value.
func ForceReload[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	typeName := getTypeName[T]()
	globalCache.mu.Lock()
	delete(globalCache.values, typeName)
	delete(globalCache.onces, typeName)
	globalCache.mu.Unlock()

	return Load(v)
}

// LoadEnv loads variables from the given .env files into the process
// environment. Files loaded later override values from earlier ones.
func LoadEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	if err := godotenv.Overload(paths...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// ResetCache drops every cached configuration. Intended for tests.
func ResetCache() {
	globalCache.mu.Lock()
	defer globalCache.mu.Unlock()
	globalCache.values = make(map[string]any)
	globalCache.onces = make(map[string]*sync.Once)
}

func loadCached[T any](typeName string, v *T) bool {
	globalCache.mu.RLock()
	defer globalCache.mu.RUnlock()
	cached, ok := globalCache.values[typeName]
	if ok {
		*v = cached.(T)
	}
	return ok
}

func parseAndStore[T any](typeName string, v *T) error {
	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	globalCache.mu.Lock()
	globalCache.values[typeName] = *v // copy, so callers cannot mutate the cache
	globalCache.mu.Unlock()
	return nil
}

// getTypeName returns a string identifier for the generic type T
func getTypeName[T any]() string {
	var zero T
	t := reflect.TypeOf(zero)
	if t == nil {
		// Handle interface types
		return fmt.Sprintf("%T", *new(T))
	}
	return t.PkgPath() + "." + t.String()
}
