package storage

import (
	"fmt"
	"time"

	"github.com/duolog/duolog/internal/models"
)

func (s *SQLiteStore) AddIncome(i models.Income) error {
	if i.Currency == "" {
		i.Currency = "INR"
	}

	_, err := s.db.Exec(`
		INSERT INTO income (id, person, amount, currency, client_name, project_description, design_id, day, note, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		i.ID, string(i.Person), i.Amount, i.Currency, i.ClientName, i.ProjectDescription,
		i.DesignID, i.Day, i.Note, i.CreatedAt.Format(time.RFC3339))
	return err
}

func (s *SQLiteStore) queryIncome(query string, args ...any) ([]models.Income, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.Income
	for rows.Next() {
		var i models.Income
		var createdAt string
		err := rows.Scan(&i.ID, &i.Person, &i.Amount, &i.Currency, &i.ClientName,
			&i.ProjectDescription, &i.DesignID, &i.Day, &i.Note, &createdAt)
		if err != nil {
			return nil, err
		}
		i.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at for income %s: %w", i.ID, err)
		}
		entries = append(entries, i)
	}

	return entries, rows.Err()
}

func (s *SQLiteStore) GetAllIncome() ([]models.Income, error) {
	return s.queryIncome(`
		SELECT id, person, amount, currency, client_name, project_description, design_id, day, note, created_at
		FROM income ORDER BY day DESC, created_at DESC`)
}

func (s *SQLiteStore) GetIncomeByPerson(person models.Person) ([]models.Income, error) {
	return s.queryIncome(`
		SELECT id, person, amount, currency, client_name, project_description, design_id, day, note, created_at
		FROM income WHERE person = ? ORDER BY day DESC, created_at DESC`, string(person))
}

func (s *SQLiteStore) GetTotalIncome() (int64, error) {
	var total int64
	err := s.db.QueryRow("SELECT COALESCE(SUM(amount), 0) FROM income").Scan(&total)
	return total, err
}
