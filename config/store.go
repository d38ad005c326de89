package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/mmdatafocus/etax_backend/store"
)

const defaultFixtureDir = "data"

var (
	documentStore *store.Store
)

func GetStore() *store.Store {
	return documentStore
}

func init() {
	// Load env from .env
	godotenv.Load()
}

// FixtureDir resolves the directory holding the per-kind JSON fixtures.
func FixtureDir() string {
	if dir := os.Getenv("FIXTURE_DIR"); dir != "" {
		return dir
	}
	return defaultFixtureDir
}

// OpenStore loads all five document kinds and sets the global store.
// Call this from main() before serving requests; queries and corrections
// return 503 until it has succeeded.
func OpenStore() error {
	s, err := store.Open(FixtureDir(), GetLogger())
	if err != nil {
		GetLogger().WithFields(logrus.Fields{
			"field": "documentStore",
			"dir":   FixtureDir(),
		}).Error("failed to open document store: " + err.Error())
		return err
	}
	documentStore = s
	return nil
}
