package store

import (
	"database/sql"
	"errors"
	"time"
)

// Event names an occurrence in the calculator that can trigger a plugin.
type Event string

const (
	// EventCalculation fires when "=" completes successfully.
	EventCalculation Event = "calculation"
	// EventClear fires when the calculator is cleared.
	EventClear Event = "clear"
)

// Action binds a calculator event to a result-plugin action.
type Action struct {
	ID         string
	Event      Event
	PluginName string
	ActionName string
	Config     string // plugin-specific JSON
	Enabled    bool
	CreatedAt  time.Time
}

// ActionRepository provides CRUD operations for plugin action bindings.
type ActionRepository struct {
	db *sql.DB
}

// Actions returns the action repository for this store.
func (s *Store) Actions() *ActionRepository {
	return &ActionRepository{db: s.db}
}

// Create inserts a new action binding into the database.
func (r *ActionRepository) Create(a *Action) error {
	a.CreatedAt = time.Now()
	if a.Config == "" {
		a.Config = "{}"
	}

	_, err := r.db.Exec(
		`INSERT INTO actions (id, event, plugin_name, action_name, config, enabled, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		a.ID, string(a.Event), a.PluginName, a.ActionName, a.Config, a.Enabled, a.CreatedAt,
	)
	return err
}

// GetByID retrieves an action binding by its ID.
func (r *ActionRepository) GetByID(id string) (*Action, error) {
	a := &Action{}
	var event string

	err := r.db.QueryRow(
		`SELECT id, event, plugin_name, action_name, config, enabled, created_at
		 FROM actions WHERE id = ?`,
		id,
	).Scan(&a.ID, &event, &a.PluginName, &a.ActionName, &a.Config, &a.Enabled, &a.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	a.Event = Event(event)
	return a, nil
}

// List retrieves all action bindings.
func (r *ActionRepository) List() ([]*Action, error) {
	return r.query(
		`SELECT id, event, plugin_name, action_name, config, enabled, created_at
		 FROM actions ORDER BY created_at DESC`,
	)
}

// ListByEvent retrieves the enabled action bindings for an event.
func (r *ActionRepository) ListByEvent(event Event) ([]*Action, error) {
	return r.query(
		`SELECT id, event, plugin_name, action_name, config, enabled, created_at
		 FROM actions WHERE event = ? AND enabled = 1 ORDER BY created_at`,
		string(event),
	)
}

func (r *ActionRepository) query(q string, args ...any) ([]*Action, error) {
	rows, err := r.db.Query(q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var actions []*Action
	for rows.Next() {
		a := &Action{}
		var event string

		if err := rows.Scan(&a.ID, &event, &a.PluginName, &a.ActionName, &a.Config, &a.Enabled, &a.CreatedAt); err != nil {
			return nil, err
		}

		a.Event = Event(event)
		actions = append(actions, a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return actions, nil
}

// Update updates an existing action binding.
func (r *ActionRepository) Update(a *Action) error {
	result, err := r.db.Exec(
		`UPDATE actions SET event = ?, plugin_name = ?, action_name = ?, config = ?, enabled = ?
		 WHERE id = ?`,
		string(a.Event), a.PluginName, a.ActionName, a.Config, a.Enabled, a.ID,
	)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// Delete removes an action binding by its ID.
func (r *ActionRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM actions WHERE id = ?`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
