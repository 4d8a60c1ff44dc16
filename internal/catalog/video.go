package catalog

import (
	"database/sql"
	"fmt"
	"strings"
	"time"
)

const videoColumns = `id, source, file_name, file_extension, file_size, other_file_size,
	duration, other_duration, video_codecs, audio_codecs, path, added_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanVideo(row rowScanner) (*Video, error) {
	v := &Video{}
	var ext, size, otherSize, dur, otherDur, vcodecs, acodecs sql.NullString
	if err := row.Scan(&v.ID, &v.Source, &v.FileName, &ext, &size, &otherSize,
		&dur, &otherDur, &vcodecs, &acodecs, &v.Path, &v.AddedAt); err != nil {
		return nil, err
	}
	v.FileExtension = ext.String
	v.FileSize = size.String
	v.OtherFileSize = otherSize.String
	v.Duration = dur.String
	v.OtherDuration = otherDur.String
	v.VideoCodecs = vcodecs.String
	v.AudioCodecs = acodecs.String
	return v, nil
}

// AddVideo inserts a new video and commits it immediately.
// Sets ID and AddedAt on the struct.
// Returns ErrDuplicate if a video with the same file name already exists.
func (s *Store) AddVideo(v *Video) error {
	if v.Source == "" || v.FileName == "" {
		return fmt.Errorf("insert video: source and file name are required: %w", ErrConstraint)
	}
	now := time.Now()
	result, err := s.db.Exec(`
		INSERT INTO videos (source, file_name, file_extension, file_size, other_file_size,
			duration, other_duration, video_codecs, audio_codecs, path, added_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		v.Source, v.FileName, nullString(v.FileExtension), nullString(v.FileSize), nullString(v.OtherFileSize),
		nullString(v.Duration), nullString(v.OtherDuration), nullString(v.VideoCodecs), nullString(v.AudioCodecs),
		v.Path, now,
	)
	if err != nil {
		return fmt.Errorf("insert video %q: %w", v.FileName, mapSQLiteError(err))
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}
	v.ID = id
	v.AddedAt = now
	return nil
}

// GetVideo retrieves a video by ID.
// Returns ErrNotFound if the video does not exist.
func (s *Store) GetVideo(id int64) (*Video, error) {
	v, err := scanVideo(s.db.QueryRow(`SELECT `+videoColumns+` FROM videos WHERE id = ?`, id))
	if err != nil {
		return nil, fmt.Errorf("get video %d: %w", id, mapSQLiteError(err))
	}
	return v, nil
}

// ListVideos returns videos matching the filter, ordered by source then
// file name. Returns (results, totalCount, error).
func (s *Store) ListVideos(f VideoFilter) ([]*Video, int, error) {
	var conditions []string
	var args []any

	if f.Source != nil {
		conditions = append(conditions, "source = ?")
		args = append(args, *f.Source)
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	var total int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM videos "+whereClause, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count videos: %w", err)
	}

	query := "SELECT " + videoColumns + " FROM videos " + whereClause + " ORDER BY source, file_name, id"
	if f.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", f.Limit, f.Offset)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list videos: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []*Video
	for rows.Next() {
		v, err := scanVideo(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan video: %w", err)
		}
		results = append(results, v)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate videos: %w", err)
	}

	return results, total, nil
}

// ListAll returns every video ordered by source then file name.
func (s *Store) ListAll() ([]*Video, error) {
	videos, _, err := s.ListVideos(VideoFilter{})
	return videos, err
}

// FileNames returns the set of every cataloged file name.
func (s *Store) FileNames() (map[string]struct{}, error) {
	rows, err := s.db.Query("SELECT file_name FROM videos")
	if err != nil {
		return nil, fmt.Errorf("list file names: %w", err)
	}
	defer func() { _ = rows.Close() }()

	names := make(map[string]struct{})
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan file name: %w", err)
		}
		names[name] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate file names: %w", err)
	}
	return names, nil
}

// CountBySource returns the number of videos per source, ordered by source.
func (s *Store) CountBySource() ([]SourceCount, error) {
	rows, err := s.db.Query("SELECT source, COUNT(*) FROM videos GROUP BY source ORDER BY source")
	if err != nil {
		return nil, fmt.Errorf("count by source: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var counts []SourceCount
	for rows.Next() {
		var c SourceCount
		if err := rows.Scan(&c.Source, &c.Count); err != nil {
			return nil, fmt.Errorf("scan count: %w", err)
		}
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate counts: %w", err)
	}
	return counts, nil
}
