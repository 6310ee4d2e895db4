package listing

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/camden-git/pvtheatresbackend/database"
)

// Hit is one search result: what to show and where it leads.
type Hit struct {
	Label string `json:"label"`
	Link  string `json:"link"`
}

type searchTarget struct {
	table string
	// label columns, joined with a space to build the label
	labels []string
	match  []string
	link   string
}

// RoutePrefix is where the API mounts the detail routes that hits link to.
const RoutePrefix = "/api"

// Search order: reports, theatres, rooms, objects, persons.
var searchTargets = []searchTarget{
	{table: "proces_verbaux", labels: []string{"date"}, match: []string{"date"}, link: RoutePrefix + "/proces_verbaux/%d"},
	{table: "theatres", labels: []string{"name"}, match: []string{"name"}, link: RoutePrefix + "/theatres/%d"},
	{table: "rooms", labels: []string{"name"}, match: []string{"name"}, link: RoutePrefix + "/rooms/%d"},
	{table: "objects", labels: []string{"type"}, match: []string{"type"}, link: RoutePrefix + "/objects/%d"},
	{table: "persons", labels: []string{"given_name", "family_name"}, match: []string{"family_name", "given_name"}, link: RoutePrefix + "/persons/%d"},
}

// Search matches keyword as a substring of report dates, theatre, room and
// person names and object types. Case sensitivity is that of the engine's
// LIKE. An empty keyword returns no hits without touching the database.
func (s *Service) Search(ctx context.Context, keyword string) ([]Hit, error) {
	hits := []Hit{}
	if keyword == "" {
		return hits, nil
	}

	pattern := database.ContainsPattern(keyword)
	for _, target := range searchTargets {
		found, err := s.searchTable(ctx, target, pattern)
		if err != nil {
			return nil, err
		}
		hits = append(hits, found...)
	}
	return hits, nil
}

func (s *Service) searchTable(ctx context.Context, target searchTarget, pattern string) ([]Hit, error) {
	columns := append([]string{"id"}, target.labels...)
	query, args, err := database.Builder.
		Select(columns...).
		From(target.table).
		Where(database.LikeAny(pattern, target.match...)).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build search on %s: %w", target.table, err)
	}

	rows, err := s.read(ctx).Raw(query, args...).Rows()
	if err != nil {
		return nil, fmt.Errorf("failed to search %s: %w", target.table, err)
	}
	defer rows.Close()

	var hits []Hit
	for rows.Next() {
		var id uint
		values := make([]sql.NullString, len(target.labels))
		dest := []interface{}{&id}
		for i := range values {
			dest = append(dest, &values[i])
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan %s search row: %w", target.table, err)
		}

		parts := make([]string, 0, len(values))
		for _, v := range values {
			if v.Valid && v.String != "" {
				parts = append(parts, v.String)
			}
		}
		hits = append(hits, Hit{Label: strings.Join(parts, " "), Link: fmt.Sprintf(target.link, id)})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s search rows: %w", target.table, err)
	}
	return hits, nil
}
