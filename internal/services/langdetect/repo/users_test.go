package repo

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestUsersRepo_LangsEmptyUserReturnsNilWithoutQuerying(t *testing.T) {
	q := &fakeQueryer{}
	u := NewUsers(zerolog.Nop()).Bind(q)

	if got := u.Langs(context.Background(), ""); got != nil {
		t.Fatalf("Langs(\"\") = %v, want nil", got)
	}
	if q.lastSQL != "" {
		t.Fatalf("Langs(\"\") issued a query: %q", q.lastSQL)
	}
}

func TestUsersRepo_LangsReturnsDeclaredSet(t *testing.T) {
	q := &fakeQueryer{rows: &fakeRows{vals: [][]any{{"eng"}, {"fra"}}}}
	u := NewUsers(zerolog.Nop()).Bind(q)

	got := u.Langs(context.Background(), "alice")
	if _, ok := got["eng"]; !ok {
		t.Fatalf("Langs() = %v, want eng present", got)
	}
	if _, ok := got["fra"]; !ok {
		t.Fatalf("Langs() = %v, want fra present", got)
	}
}

func TestUsersRepo_LangsSwallowsQueryError(t *testing.T) {
	q := &fakeQueryer{rowsErr: errors.New("users_langs: boom")}
	u := NewUsers(zerolog.Nop()).Bind(q)

	if got := u.Langs(context.Background(), "alice"); got != nil {
		t.Fatalf("Langs() = %v, want nil on storage error", got)
	}
}

func TestUsersRepo_DeclareIsIdempotentOnConflict(t *testing.T) {
	q := &fakeQueryer{}
	u := NewUsers(zerolog.Nop()).Bind(q)

	if err := u.Declare(context.Background(), "alice", "eng"); err != nil {
		t.Fatalf("Declare() err = %v", err)
	}
	if q.lastArgs[0] != "alice" || q.lastArgs[1] != "eng" {
		t.Fatalf("Declare() args = %v, want [alice eng]", q.lastArgs)
	}
	if !strings.Contains(q.lastSQL, "ON CONFLICT") {
		t.Fatalf("Declare() SQL = %q, want an ON CONFLICT clause", q.lastSQL)
	}
}

func TestUsersRepo_ListReturnsSortedLangs(t *testing.T) {
	q := &fakeQueryer{rows: &fakeRows{vals: [][]any{{"deu"}, {"eng"}}}}
	u := NewUsers(zerolog.Nop()).Bind(q)

	got, err := u.List(context.Background(), "alice")
	if err != nil {
		t.Fatalf("List() err = %v", err)
	}
	if len(got) != 2 || got[0] != "deu" || got[1] != "eng" {
		t.Fatalf("List() = %v, want [deu eng]", got)
	}
}
