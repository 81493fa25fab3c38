package store

import (
	"testing"

	"carebase/internal/database"
)

func setupJobTestDB(t *testing.T) (*JobStore, *MemberStore, int64) {
	t.Helper()
	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	us := NewUserStore(db)
	ms := NewMemberStore(db)

	user, err := us.Create("mb@x.com", "Bo", "Kim", "", "", "", "pw")
	if err != nil {
		t.Fatalf("create member user: %v", err)
	}
	if _, err := ms.Create(user.UserID, ""); err != nil {
		t.Fatalf("create member: %v", err)
	}

	return NewJobStore(db), ms, user.UserID
}

func TestJobCreateListDelete(t *testing.T) {
	js, _, memberID := setupJobTestDB(t)

	job, err := js.Create(memberID, "elder", "must like dogs", "2026-08-20")
	if err != nil {
		t.Fatalf("create job: %v", err)
	}
	if job.JobID == 0 {
		t.Error("expected generated job_id")
	}
	if job.RequiredCaregivingType != "elder" {
		t.Errorf("required type = %q, want %q", job.RequiredCaregivingType, "elder")
	}

	rows, err := js.List()
	if err != nil {
		t.Fatalf("list jobs: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 job, got %d", len(rows))
	}
	if rows[0].MemberName != "Bo Kim" {
		t.Errorf("member_name = %q, want %q", rows[0].MemberName, "Bo Kim")
	}

	if err := js.Delete(job.JobID); err != nil {
		t.Fatalf("delete job: %v", err)
	}
	rows, err = js.List()
	if err != nil {
		t.Fatalf("list jobs: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("expected no jobs, got %d", len(rows))
	}
}

func TestJobListNewestPostingFirst(t *testing.T) {
	js, _, memberID := setupJobTestDB(t)

	for _, d := range []string{"2026-08-01", "2026-08-20", "2026-07-15"} {
		if _, err := js.Create(memberID, "elder", "", d); err != nil {
			t.Fatalf("create job: %v", err)
		}
	}

	rows, err := js.List()
	if err != nil {
		t.Fatalf("list jobs: %v", err)
	}
	want := []string{"2026-08-20", "2026-08-01", "2026-07-15"}
	for i, w := range want {
		if rows[i].DatePosted != w {
			t.Errorf("rows[%d].DatePosted = %q, want %q", i, rows[i].DatePosted, w)
		}
	}
}

func TestJobDeleteMissingIsSilent(t *testing.T) {
	js, _, memberID := setupJobTestDB(t)

	if _, err := js.Create(memberID, "child", "", "2026-08-01"); err != nil {
		t.Fatalf("create job: %v", err)
	}

	if err := js.Delete(999); err != nil {
		t.Fatalf("delete missing job: %v", err)
	}

	rows, err := js.List()
	if err != nil {
		t.Fatalf("list jobs: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("expected list unchanged, got %d rows", len(rows))
	}
}

func TestMemberOptionsOrderedByGivenName(t *testing.T) {
	_, ms, _ := setupJobTestDB(t)

	opts, err := ms.Options()
	if err != nil {
		t.Fatalf("member options: %v", err)
	}
	if len(opts) != 1 {
		t.Fatalf("expected 1 member option, got %d", len(opts))
	}
	if opts[0].GivenName != "Bo" || opts[0].Surname != "Kim" {
		t.Errorf("option = %+v", opts[0])
	}
}
