// Package repo provides the people repository implementations
package repo

import (
	"context"
	"time"

	perr "peopledex/internal/platform/errors"
	"peopledex/internal/platform/store"
	pstrings "peopledex/internal/platform/strings"

	"peopledex/internal/modkit/repokit"
	"peopledex/internal/services/people/domain"
)

// Storage defines the people repository
type Storage interface {
	Insert(ctx context.Context, in domain.CreatePersonInput) (domain.Person, error)
	GetByID(ctx context.Context, id int64) (domain.Person, error)
	Search(ctx context.Context, term string, limit int) ([]domain.Person, error)
	Count(ctx context.Context) (int64, error)
}

type (
	pg     struct{ q repokit.Queryer }
	binder struct{}
)

// NewPG constructs a new repo binder for Postgres
func NewPG() repokit.Binder[Storage] { return binder{} }

// Bind implements repokit.Binder
func (binder) Bind(q repokit.Queryer) Storage { return &pg{q: q} }

const personColumns = `id, nickname, name, dob, stacks`

// Insert implements Storage
// duplicate nicknames surface as a conflict via the unique constraint,
// classified by SQLSTATE rather than racy pre-checks
func (s *pg) Insert(ctx context.Context, in domain.CreatePersonInput) (domain.Person, error) {
	var id int64
	err := s.q.QueryRow(ctx, `
		INSERT INTO people (nickname, name, dob, stacks)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		in.Nickname, in.Name, in.Born.Time, in.Stacks,
	).Scan(&id)
	if err != nil {
		return domain.Person{}, perr.FromPostgresWithField(err, "insert person")
	}
	return domain.Person{
		ID:       id,
		Nickname: in.Nickname,
		Name:     in.Name,
		Born:     in.Born,
		Stacks:   in.Stacks,
	}, nil
}

// GetByID implements Storage
func (s *pg) GetByID(ctx context.Context, id int64) (domain.Person, error) {
	p, err := store.One(ctx, s.q, scanPerson, `
		SELECT `+personColumns+`
		FROM people
		WHERE id = $1`, id)
	if err != nil {
		if perr.IsCode(err, perr.ErrorCodeNotFound) {
			return domain.Person{}, perr.NotFoundID("person", id)
		}
		return domain.Person{}, perr.FromPostgres(err, "get person")
	}
	return p, nil
}

// Search implements Storage
// matching is a case-sensitive substring test over nickname, name, and
// each stack element; LIKE metacharacters in term are treated literally
func (s *pg) Search(ctx context.Context, term string, limit int) ([]domain.Person, error) {
	pattern := pstrings.LikePattern(term)
	out, err := store.Many(ctx, s.q, scanPerson, `
		SELECT `+personColumns+`
		FROM people
		WHERE nickname LIKE $1
		   OR name LIKE $1
		   OR EXISTS (SELECT 1 FROM unnest(stacks) AS stack_item WHERE stack_item LIKE $1)
		ORDER BY id
		LIMIT $2`, pattern, limit)
	if err != nil {
		return nil, perr.FromPostgres(err, "search people")
	}
	return out, nil
}

// Count implements Storage
func (s *pg) Count(ctx context.Context) (int64, error) {
	n, err := store.Scalar[int64](ctx, s.q, `SELECT count(*) FROM people`)
	if err != nil {
		return 0, perr.FromPostgres(err, "count people")
	}
	return n, nil
}

func scanPerson(r store.Row) (domain.Person, error) {
	var (
		p      domain.Person
		dob    time.Time
		stacks []string
	)
	if err := r.Scan(&p.ID, &p.Nickname, &p.Name, &dob, &stacks); err != nil {
		return domain.Person{}, err
	}
	p.Born = domain.Date{Time: dob}
	p.Stacks = stacks
	return p, nil
}
