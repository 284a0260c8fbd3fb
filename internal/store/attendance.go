package store

import (
	"fmt"

	"github.com/i-satyam007/IPM/internal/model"
)

// GetAttendance returns every mark recorded for one user, keyed by
// session key. An unknown user yields an empty map, not an error.
func (s *Store) GetAttendance(userEmail string) (map[string]model.AttendanceStatus, error) {
	rows, err := s.db.Query(
		"SELECT session_key, status FROM attendance WHERE user_email = ?", userEmail)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	marks := make(map[string]model.AttendanceStatus)
	for rows.Next() {
		var key, status string
		if err := rows.Scan(&key, &status); err != nil {
			return nil, err
		}
		marks[key] = model.AttendanceStatus(status)
	}

	return marks, rows.Err()
}

// SetMark upserts one attendance mark.
func (s *Store) SetMark(userEmail, sessionKey string, status model.AttendanceStatus) error {
	if status != model.AttendancePresent && status != model.AttendanceAbsent {
		return fmt.Errorf("invalid attendance status %q", status)
	}

	_, err := s.db.Exec(`
		INSERT INTO attendance (user_email, session_key, status) VALUES (?, ?, ?)
		ON CONFLICT(user_email, session_key) DO UPDATE SET status = ?, updated_at = CURRENT_TIMESTAMP
	`, userEmail, sessionKey, string(status), string(status))
	return err
}

// DeleteMark removes one mark; deleting a missing mark is a no-op.
func (s *Store) DeleteMark(userEmail, sessionKey string) error {
	_, err := s.db.Exec(
		"DELETE FROM attendance WHERE user_email = ? AND session_key = ?", userEmail, sessionKey)
	return err
}
