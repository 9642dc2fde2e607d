// Command seed prepares or inspects a climexa store file outside the running
// service. It can force the astronomical event seed and dump collections as
// JSON for debugging.
//
// Usage:
//
//	go run ./cmd/seed -store climexa.db -reset-astro
//	go run ./cmd/seed -store climexa.db -dump
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/Vexa12/climexa/internal/domain"
	"github.com/Vexa12/climexa/internal/repository"
	"github.com/Vexa12/climexa/internal/store"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	storePath := flag.String("store", "climexa.db", "path to the store file")
	resetAstro := flag.Bool("reset-astro", false, "rewrite the astronomical events collection with the default seed")
	dump := flag.Bool("dump", false, "print all collections as JSON")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	st, err := store.Open(*storePath, logger, nil)
	if err != nil {
		return err
	}
	defer st.Close()

	if *resetAstro {
		events := repository.DefaultAstronomicalEvents()
		if err := st.Write(store.KeyAstronomicalEvents, events); err != nil {
			return err
		}
		log.Printf("astronomical events reset: %d entries", len(events))
	}

	if *dump {
		return dumpCollections(st)
	}
	return nil
}

func dumpCollections(st *store.Store) error {
	dump := map[string]any{}

	var users []domain.User
	if err := read(st, store.KeyUsers, &users); err != nil {
		return err
	}
	dump["users"] = users

	var current domain.User
	if err := st.Read(store.KeyCurrentUser, &current); err == nil {
		dump["currentUser"] = current
	} else if !errors.Is(err, store.ErrNotFound) {
		return err
	}

	var events []domain.Event
	if err := read(st, store.KeyEvents, &events); err != nil {
		return err
	}
	dump["events"] = events

	var reviews []domain.Review
	if err := read(st, store.KeyReviews, &reviews); err != nil {
		return err
	}
	dump["reviews"] = reviews

	var astro []domain.AstronomicalEvent
	if err := read(st, store.KeyAstronomicalEvents, &astro); err != nil {
		return err
	}
	dump["astronomicalEvents"] = astro

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(dump)
}

// read loads a collection, tolerating a never-written key.
func read(st *store.Store, key string, v any) error {
	if err := st.Read(key, v); err != nil && !errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("read %s: %w", key, err)
	}
	return nil
}
