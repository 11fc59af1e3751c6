package store

import "os"
import "fmt"
import "context"
import "encoding/json"
import "database/sql"
import "path/filepath"

import "github.com/bilalghalib/Cursive-sub000/ink"
import "github.com/bilalghalib/Cursive-sub000/style"
import "github.com/bilalghalib/Cursive-sub000/train"
import "github.com/bilalghalib/Cursive-sub000/connect"

import _ "modernc.org/sqlite" // SQLite driver.

// Store wraps SQLite access for on-device training state.
type Store struct {
	db *sql.DB
}

// Opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	store := &Store{ db: db }
	if err := store.migrate(); err != nil {
		_ = db.Close() // best-effort close on migration failure
		return nil, err
	}
	return store, nil
}

// Closes the underlying database.
func (self *Store) Close() error {
	return self.db.Close()
}

func (self *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS samples (
			label TEXT NOT NULL,
			variation INTEGER NOT NULL,
			stroke TEXT NOT NULL,
			PRIMARY KEY (label, variation)
		);`,
		`CREATE TABLE IF NOT EXISTS profile (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			data TEXT NOT NULL,
			derived_at INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS connections (
			label TEXT PRIMARY KEY,
			data TEXT NOT NULL
		);`,
	}
	for _, stmt := range stmts {
		if _, err := self.db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to migrate store: %w", err)
		}
	}
	return nil
}

// Appends one training sample for a label. The variation index is
// assigned from the current count, mirroring [train.SampleSet.Add]().
func (self *Store) SaveSample(ctx context.Context, label string, stroke ink.Stroke) error {
	if label == "" || stroke.IsEmpty() { return nil } // same anomaly policy as capture
	data, err := stroke.MarshalJSON()
	if err != nil {
		return fmt.Errorf("failed to encode sample: %w", err)
	}
	_, err = self.db.ExecContext(ctx,
		`INSERT INTO samples (label, variation, stroke)
		 VALUES (?, (SELECT COALESCE(MAX(variation), 0) + 1 FROM samples WHERE label = ?), ?)`,
		label, label, string(data))
	if err != nil {
		return fmt.Errorf("failed to save sample: %w", err)
	}
	return nil
}

// Loads every stored sample into a fresh sample set.
func (self *Store) LoadSamples(ctx context.Context) (*train.SampleSet, error) {
	rows, err := self.db.QueryContext(ctx,
		`SELECT label, stroke FROM samples ORDER BY label, variation`)
	if err != nil {
		return nil, fmt.Errorf("failed to load samples: %w", err)
	}
	defer func() { _ = rows.Close() }()

	samples := train.NewSampleSet()
	for rows.Next() {
		var label, data string
		if err := rows.Scan(&label, &data); err != nil {
			return nil, fmt.Errorf("failed to load samples: %w", err)
		}
		var stroke ink.Stroke
		if err := stroke.UnmarshalJSON([]byte(data)); err != nil {
			return nil, fmt.Errorf("failed to decode sample for %q: %w", label, err)
		}
		samples.Add(label, stroke)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to load samples: %w", err)
	}
	return samples, nil
}

// Stores the active style profile, replacing any previous one.
func (self *Store) SaveProfile(ctx context.Context, profile style.Profile) error {
	data, err := json.Marshal(&profile)
	if err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}
	_, err = self.db.ExecContext(ctx,
		`INSERT INTO profile (id, data, derived_at) VALUES (1, ?, ?)
		 ON CONFLICT (id) DO UPDATE SET data = excluded.data, derived_at = excluded.derived_at`,
		string(data), profile.DerivedAt)
	if err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}

// Loads the stored style profile. The second result is false when
// no profile has been derived yet; callers then use [style.Default]().
func (self *Store) LoadProfile(ctx context.Context) (style.Profile, bool, error) {
	var data string
	err := self.db.QueryRowContext(ctx, `SELECT data FROM profile WHERE id = 1`).Scan(&data)
	if err == sql.ErrNoRows { return style.Profile{}, false, nil }
	if err != nil {
		return style.Profile{}, false, fmt.Errorf("failed to load profile: %w", err)
	}
	var profile style.Profile
	if err := json.Unmarshal([]byte(data), &profile); err != nil {
		return style.Profile{}, false, fmt.Errorf("failed to decode profile: %w", err)
	}
	return profile, true, nil
}

// Replaces the whole connection point table.
func (self *Store) SaveConnections(ctx context.Context, table *connect.Table) error {
	tx, err := self.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to save connections: %w", err)
	}
	committed := false
	defer func() { if !committed { _ = tx.Rollback() } }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM connections`); err != nil {
		return fmt.Errorf("failed to save connections: %w", err)
	}
	if table != nil {
		for label, anchors := range table.Map() {
			data, err := encodeAnchors(anchors)
			if err != nil { return err }
			_, err = tx.ExecContext(ctx,
				`INSERT INTO connections (label, data) VALUES (?, ?)`, label, data)
			if err != nil {
				return fmt.Errorf("failed to save connections: %w", err)
			}
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to save connections: %w", err)
	}
	committed = true
	return nil
}

// Loads the stored connection point table.
func (self *Store) LoadConnections(ctx context.Context) (*connect.Table, error) {
	rows, err := self.db.QueryContext(ctx, `SELECT label, data FROM connections`)
	if err != nil {
		return nil, fmt.Errorf("failed to load connections: %w", err)
	}
	defer func() { _ = rows.Close() }()

	anchors := make(map[string]connect.Anchors)
	for rows.Next() {
		var label, data string
		if err := rows.Scan(&label, &data); err != nil {
			return nil, fmt.Errorf("failed to load connections: %w", err)
		}
		labelAnchors, err := decodeAnchors(data)
		if err != nil { return nil, err }
		anchors[label] = labelAnchors
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to load connections: %w", err)
	}
	return connect.TableFromMap(anchors), nil
}

// Replaces the entire stored state in one transaction. This is the
// path the training flow uses after re-deriving: samples, profile
// and connections land together or not at all.
func (self *Store) ReplaceState(ctx context.Context, state State) error {
	tx, err := self.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to replace state: %w", err)
	}
	committed := false
	defer func() { if !committed { _ = tx.Rollback() } }()

	for _, table := range []string{ "samples", "profile", "connections" } {
		if _, err := tx.ExecContext(ctx, `DELETE FROM ` + table); err != nil {
			return fmt.Errorf("failed to replace state: %w", err)
		}
	}

	for label, variations := range state.Samples {
		for i, stroke := range variations {
			data, err := stroke.MarshalJSON()
			if err != nil {
				return fmt.Errorf("failed to encode sample: %w", err)
			}
			_, err = tx.ExecContext(ctx,
				`INSERT INTO samples (label, variation, stroke) VALUES (?, ?, ?)`,
				label, i + 1, string(data))
			if err != nil {
				return fmt.Errorf("failed to replace state: %w", err)
			}
		}
	}

	profileData, err := json.Marshal(&state.Profile)
	if err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}
	_, err = tx.ExecContext(ctx,
		`INSERT INTO profile (id, data, derived_at) VALUES (1, ?, ?)`,
		string(profileData), state.Profile.DerivedAt)
	if err != nil {
		return fmt.Errorf("failed to replace state: %w", err)
	}

	for label, anchors := range state.Connections {
		data, err := encodeAnchors(anchors)
		if err != nil { return err }
		_, err = tx.ExecContext(ctx,
			`INSERT INTO connections (label, data) VALUES (?, ?)`, label, data)
		if err != nil {
			return fmt.Errorf("failed to replace state: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to replace state: %w", err)
	}
	committed = true
	return nil
}

// Loads the entire stored state.
func (self *Store) LoadState(ctx context.Context) (State, error) {
	samples, err := self.LoadSamples(ctx)
	if err != nil { return State{}, err }
	profile, found, err := self.LoadProfile(ctx)
	if err != nil { return State{}, err }
	if !found { profile = style.Default() }
	connections, err := self.LoadConnections(ctx)
	if err != nil { return State{}, err }
	return NewState(samples, profile, connections), nil
}

func encodeAnchors(anchors connect.Anchors) (string, error) {
	data, err := json.Marshal(&anchors)
	if err != nil {
		return "", fmt.Errorf("failed to encode anchors: %w", err)
	}
	return string(data), nil
}

func decodeAnchors(data string) (connect.Anchors, error) {
	var anchors connect.Anchors
	err := json.Unmarshal([]byte(data), &anchors)
	if err != nil {
		return connect.Anchors{}, fmt.Errorf("failed to decode anchors: %w", err)
	}
	return anchors, nil
}
