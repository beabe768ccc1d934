//go:build integration_pg
// +build integration_pg

package repo

import (
	"context"
	"fmt"
	"io"
	"sync"
	"testing"
	"time"

	perr "peopledex/internal/platform/errors"
	"peopledex/internal/platform/logger"
	"peopledex/internal/platform/store"

	"peopledex/internal/services/people/domain"

	"github.com/rs/zerolog"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// mirrors migrations/0001_people.sql
const peopleDDL = `
CREATE TABLE IF NOT EXISTS people (
    id       BIGSERIAL PRIMARY KEY,
    nickname VARCHAR(32)  NOT NULL UNIQUE,
    name     VARCHAR(100) NOT NULL,
    dob      DATE         NOT NULL,
    stacks   TEXT[]       NULL
)`

func startPostgres(t *testing.T) (dsn string, stop func()) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)

	req := tc.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "postgres",
			"POSTGRES_PASSWORD": "postgres",
			"POSTGRES_DB":       "postgres",
		},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort("5432/tcp"),
			wait.ForLog("database system is ready to accept connections"),
		).WithDeadline(2 * time.Minute),
	}
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		cancel()
		t.Fatalf("failed to start postgres container: %v", err)
	}

	host, err := c.Host(ctx)
	if err != nil {
		_ = c.Terminate(context.Background())
		cancel()
		t.Fatalf("failed to get container host: %v", err)
	}
	mp, err := c.MappedPort(ctx, "5432/tcp")
	if err != nil {
		_ = c.Terminate(context.Background())
		cancel()
		t.Fatalf("failed to get mapped port: %v", err)
	}

	dsn = fmt.Sprintf("postgres://postgres:postgres@%s:%s/postgres?sslmode=disable", host, mp.Port())
	stop = func() {
		_ = c.Terminate(context.Background())
		cancel()
	}
	return dsn, stop
}

func newPGStorage(t *testing.T, ctx context.Context, dsn string) (Storage, func()) {
	t.Helper()

	s, err := store.Open(ctx, store.Config{
		AppName: "peopledex-test",
		PG: store.PGConfig{
			Enabled:  true,
			URL:      dsn,
			MaxConns: 2,
		},
	}, store.WithLogger(logger.Logger(zerolog.New(io.Discard))))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	if _, err := s.PG.Exec(ctx, peopleDDL); err != nil {
		t.Fatalf("apply schema: %v", err)
	}
	return NewPG().Bind(s.PG), func() { _ = s.Close(context.Background()) }
}

func TestPGStorage_Integration(t *testing.T) {
	dsn, stop := startPostgres(t)
	defer stop()

	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	st, closeStore := newPGStorage(t, ctx, dsn)
	defer closeStore()

	ana, err := st.Insert(ctx, domain.CreatePersonInput{
		Nickname: "ana",
		Name:     "Ana Souza",
		Born:     domain.NewDate(1995, 3, 9),
		Stacks:   []string{"Go", "postgres"},
	})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if ana.ID == 0 {
		t.Fatalf("insert returned zero id")
	}

	// duplicate nickname must come back classified from SQLSTATE 23505
	_, err = st.Insert(ctx, domain.CreatePersonInput{
		Nickname: "ana",
		Name:     "Outra Ana",
		Born:     domain.NewDate(1990, 1, 1),
	})
	if !perr.IsCode(err, perr.ErrorCodeConflict) {
		t.Fatalf("duplicate insert err = %v; want conflict", err)
	}

	// nil stacks round-trips as NULL
	breno, err := st.Insert(ctx, domain.CreatePersonInput{
		Nickname: "breno",
		Name:     "Breno Lima",
		Born:     domain.NewDate(1991, 11, 2),
	})
	if err != nil {
		t.Fatalf("insert breno: %v", err)
	}
	got, err := st.GetByID(ctx, breno.ID)
	if err != nil {
		t.Fatalf("get breno: %v", err)
	}
	if got.Stacks != nil {
		t.Fatalf("stacks = %v; want nil", got.Stacks)
	}

	got, err = st.GetByID(ctx, ana.ID)
	if err != nil {
		t.Fatalf("get ana: %v", err)
	}
	if got.Nickname != "ana" || got.Name != "Ana Souza" || got.Born.String() != "1995-03-09" {
		t.Fatalf("got = %+v", got)
	}
	if len(got.Stacks) != 2 || got.Stacks[0] != "Go" {
		t.Fatalf("stacks = %v", got.Stacks)
	}

	if _, err := st.GetByID(ctx, 9999); !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("missing id err = %v; want not found", err)
	}

	cases := []struct {
		name string
		term string
		want []string
	}{
		{"nickname substring", "bre", []string{"breno"}},
		{"name substring", "Souza", []string{"ana"}},
		{"stack element", "postgres", []string{"ana"}},
		{"case sensitive", "souza", nil},
		{"like metacharacters are literal", "%", nil},
		{"empty term matches all", "", []string{"ana", "breno"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rows, err := st.Search(ctx, tc.term, 50)
			if err != nil {
				t.Fatalf("search: %v", err)
			}
			if len(rows) != len(tc.want) {
				t.Fatalf("got %d rows (%v); want %d", len(rows), rows, len(tc.want))
			}
			for i, p := range rows {
				if p.Nickname != tc.want[i] {
					t.Fatalf("row %d = %q; want %q", i, p.Nickname, tc.want[i])
				}
			}
		})
	}

	limited, err := st.Search(ctx, "", 1)
	if err != nil {
		t.Fatalf("limited search: %v", err)
	}
	if len(limited) != 1 || limited[0].Nickname != "ana" {
		t.Fatalf("limited = %v; want just ana", limited)
	}

	n, err := st.Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 2 {
		t.Fatalf("count = %d; want 2", n)
	}

	// racing creates on one nickname: the unique constraint must let exactly
	// one through and classify the rest as conflicts
	const workers = 8
	var wg sync.WaitGroup
	errs := make([]error, workers)
	start := make(chan struct{})

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			_, errs[i] = st.Insert(ctx, domain.CreatePersonInput{
				Nickname: "carla",
				Name:     "Carla Dias",
				Born:     domain.NewDate(1993, 7, 21),
				Stacks:   []string{"go"},
			})
		}(i)
	}
	close(start)
	wg.Wait()

	var won, conflicts int
	for _, e := range errs {
		switch {
		case e == nil:
			won++
		case perr.IsCode(e, perr.ErrorCodeConflict):
			conflicts++
		default:
			t.Fatalf("unexpected error from racing insert: %v", e)
		}
	}
	if won != 1 || conflicts != workers-1 {
		t.Fatalf("successes = %d, conflicts = %d; want 1 and %d", won, conflicts, workers-1)
	}

	n, err = st.Count(ctx)
	if err != nil {
		t.Fatalf("count after race: %v", err)
	}
	if n != 3 {
		t.Fatalf("count after race = %d; want 3", n)
	}
}
