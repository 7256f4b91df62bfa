package listing

import (
	"context"
	"errors"
	"testing"

	"github.com/jimezsa/jobboard/internal/models"
)

type fakeSource struct {
	jobs  []models.JobPosting
	err   error
	calls int
}

func (f *fakeSource) List(context.Context) ([]models.JobPosting, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.jobs, nil
}

func sampleJobs() []models.JobPosting {
	return []models.JobPosting{
		{ID: "1", JobTitle: "Frontend Developer", JobLocation: "Chennai"},
		{ID: "2", JobTitle: "Go Engineer", JobLocation: "Bengaluru"},
		{ID: "3", JobTitle: "Data Analyst", JobLocation: "Chennai, Remote"},
		{ID: "4", JobTitle: "Backend Developer", JobLocation: "Pune"},
	}
}

func titles(jobs []models.JobPosting) []string {
	out := make([]string, 0, len(jobs))
	for _, job := range jobs {
		out = append(out, job.JobTitle)
	}
	return out
}

func TestEngineStartsLoading(t *testing.T) {
	engine := NewEngine(&fakeSource{})
	if engine.State() != StateLoading || !engine.Loading() {
		t.Fatalf("State() = %s, want loading", engine.State())
	}
	if len(engine.View()) != 0 {
		t.Fatalf("View() should be empty before load")
	}
	if _, err := engine.Lookup("1"); !errors.Is(err, ErrNotLoaded) {
		t.Fatalf("Lookup() error = %v, want ErrNotLoaded", err)
	}
}

func TestEngineLoadPopulatesBothSets(t *testing.T) {
	source := &fakeSource{jobs: sampleJobs()}
	engine := NewEngine(source)

	if err := engine.Load(context.Background()); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if source.calls != 1 {
		t.Fatalf("source calls = %d, want 1", source.calls)
	}
	if engine.State() != StatePopulated {
		t.Fatalf("State() = %s, want populated", engine.State())
	}
	if len(engine.All()) != 4 || len(engine.View()) != 4 {
		t.Fatalf("All()=%d View()=%d, want 4/4", len(engine.All()), len(engine.View()))
	}
}

func TestEngineLoadFailureKeepsLoading(t *testing.T) {
	boom := errors.New("connection refused")
	engine := NewEngine(&fakeSource{err: boom})

	err := engine.Load(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("Load() error = %v, want wrapped %v", err, boom)
	}
	if engine.State() != StateLoading {
		t.Fatalf("State() = %s, want loading after failed load", engine.State())
	}
}

func TestEngineLoadWithoutSource(t *testing.T) {
	if err := NewEngine(nil).Load(context.Background()); err == nil {
		t.Fatalf("Load() error = nil, want error")
	}
}

func TestEngineFilter(t *testing.T) {
	engine := NewEngine(&fakeSource{jobs: sampleJobs()})
	if err := engine.Load(context.Background()); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	cases := []struct {
		query string
		want  []string
		state State
	}{
		{"", []string{"Frontend Developer", "Go Engineer", "Data Analyst", "Backend Developer"}, StatePopulated},
		{"developer", []string{"Frontend Developer", "Backend Developer"}, StatePopulated},
		{"CHENNAI", []string{"Frontend Developer", "Data Analyst"}, StatePopulated},
		{"remote", []string{"Data Analyst"}, StatePopulated},
		{"go", []string{"Go Engineer"}, StatePopulated},
		{"rust", []string{}, StateEmpty},
	}

	for _, tc := range cases {
		engine.Filter(tc.query)
		got := titles(engine.View())
		if len(got) != len(tc.want) {
			t.Fatalf("Filter(%q) = %v, want %v", tc.query, got, tc.want)
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Fatalf("Filter(%q) = %v, want %v", tc.query, got, tc.want)
			}
		}
		if engine.State() != tc.state {
			t.Fatalf("Filter(%q) state = %s, want %s", tc.query, engine.State(), tc.state)
		}
		if engine.Query() != tc.query {
			t.Fatalf("Query() = %q, want %q", engine.Query(), tc.query)
		}
		if len(engine.All()) != 4 {
			t.Fatalf("canonical collection changed by Filter(%q)", tc.query)
		}
	}
}

func TestEngineEmptyCollection(t *testing.T) {
	engine := NewEngine(&fakeSource{jobs: nil})
	if err := engine.Load(context.Background()); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if engine.State() != StateEmpty {
		t.Fatalf("State() = %s, want empty", engine.State())
	}
}

func TestEngineViewIsACopy(t *testing.T) {
	engine := NewEngine(&fakeSource{jobs: sampleJobs()})
	if err := engine.Load(context.Background()); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	view := engine.View()
	view[0].JobTitle = "changed"
	if engine.View()[0].JobTitle != "Frontend Developer" {
		t.Fatalf("mutating View() result leaked into the engine")
	}
}

func TestEngineLookup(t *testing.T) {
	engine := NewEngine(&fakeSource{jobs: sampleJobs()})
	if err := engine.Load(context.Background()); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	engine.Filter("chennai")

	job, err := engine.Lookup("4")
	if err != nil || job.JobTitle != "Backend Developer" {
		t.Fatalf("Lookup(id 4) = %+v, %v", job, err)
	}

	engine = NewEngine(&fakeSource{jobs: []models.JobPosting{
		{JobTitle: "Frontend Developer", JobLocation: "Chennai"},
		{JobTitle: "Data Analyst", JobLocation: "Chennai"},
	}})
	if err := engine.Load(context.Background()); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	job, err = engine.Lookup("2")
	if err != nil || job.JobTitle != "Data Analyst" {
		t.Fatalf("Lookup(position 2) = %+v, %v", job, err)
	}
	if _, err := engine.Lookup("3"); !errors.Is(err, ErrJobNotFound) {
		t.Fatalf("Lookup(3) error = %v, want ErrJobNotFound", err)
	}
	if _, err := engine.Lookup(" "); err == nil {
		t.Fatalf("Lookup(blank) error = nil, want error")
	}
}

func TestEngineLookupIDShadowsPosition(t *testing.T) {
	engine := NewEngine(&fakeSource{jobs: []models.JobPosting{
		{ID: "2", JobTitle: "Frontend Developer"},
		{JobTitle: "Data Analyst"},
	}})
	if err := engine.Load(context.Background()); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	job, err := engine.Lookup("2")
	if err != nil || job.JobTitle != "Frontend Developer" {
		t.Fatalf("Lookup(2) = %+v, %v; want the posting whose id is 2", job, err)
	}
	job, err = engine.Lookup("1")
	if err != nil || job.JobTitle != "Frontend Developer" {
		t.Fatalf("Lookup(1) = %+v, %v; want position 1", job, err)
	}
}
