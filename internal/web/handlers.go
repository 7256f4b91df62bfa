package web

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jimezsa/jobboard/internal/form"
	"github.com/jimezsa/jobboard/internal/listing"
	"github.com/jimezsa/jobboard/internal/models"
)

type page struct {
	Title string
}

type card struct {
	Job  models.JobPosting
	Link string
}

type jobsPage struct {
	page
	Query   string
	Loading bool
	Cards   []card
	Total   int
}

type jobPage struct {
	page
	Loading bool
	Job     models.JobPosting
}

type postPage struct {
	page
	Values      models.JobPosting
	Errors      map[string]string
	Categories  []models.Option
	SalaryBands []models.Option
	Statuses    []models.Option
	Posted      bool
	Failed      bool
}

func (s *Server) home(c *gin.Context) {
	c.HTML(http.StatusOK, "home.html", page{Title: "Job Board"})
}

// jobs renders the search page. Filtering happens on submit of the search
// form, which arrives here as ?q=.
func (s *Server) jobs(c *gin.Context) {
	query := c.Query("q")
	data := jobsPage{page: page{Title: "Search Jobs"}, Query: query}

	engine := listing.NewEngine(s.backend)
	if err := engine.Load(c.Request.Context()); err != nil {
		s.logger.Error().Err(err).Msg("failed to load job postings")
		data.Loading = true
		c.HTML(http.StatusServiceUnavailable, "jobs.html", data)
		return
	}
	engine.Filter(query)

	data.Cards = cardsFor(engine.All(), engine.View())
	data.Total = len(engine.All())
	c.HTML(http.StatusOK, "jobs.html", data)
}

// cardsFor links every posting in view to its detail page. Postings without
// a server id are linked by position in the full collection, which view
// preserves as a subsequence.
func cardsFor(all, view []models.JobPosting) []card {
	cards := make([]card, 0, len(view))
	pos := 0
	for _, job := range view {
		for pos < len(all) && all[pos] != job {
			pos++
		}
		cards = append(cards, card{Job: job, Link: jobLink(job, pos+1)})
		pos++
	}
	return cards
}

func jobLink(job models.JobPosting, pos int) string {
	if job.ID != "" {
		return "/jobs/" + url.PathEscape(job.ID)
	}
	return "/jobs/" + strconv.Itoa(pos)
}

func (s *Server) jobDetail(c *gin.Context) {
	data := jobPage{page: page{Title: "Job Details"}}

	engine := listing.NewEngine(s.backend)
	if err := engine.Load(c.Request.Context()); err != nil {
		s.logger.Error().Err(err).Msg("failed to load job postings")
		data.Loading = true
		c.HTML(http.StatusServiceUnavailable, "job.html", data)
		return
	}

	job, err := engine.Lookup(c.Param("id"))
	if err != nil {
		c.HTML(http.StatusNotFound, "notfound.html", page{Title: "Job not found"})
		return
	}
	data.Job = job
	data.Title = job.JobTitle
	c.HTML(http.StatusOK, "job.html", data)
}

func newPostPage() postPage {
	return postPage{
		page:        page{Title: "Post A Job"},
		Categories:  models.Categories,
		SalaryBands: models.SalaryBands,
		Statuses:    models.RecruitingStatuses,
	}
}

func (s *Server) postForm(c *gin.Context) {
	data := newPostPage()
	data.Posted = c.Query("posted") == "1"
	c.HTML(http.StatusOK, "postjob.html", data)
}

// submitJob validates the posted values and writes them to the backend.
// Invalid input is shown again with the messages next to each field.
func (s *Server) submitJob(c *gin.Context) {
	values := make(map[string]string, len(models.Fields))
	for _, field := range models.Fields {
		values[field] = c.PostForm(field)
	}

	f := form.New(s.backend)
	f.Fill(values)
	submitted := f.Values

	err := f.Submit(c.Request.Context())
	if err == nil {
		c.Redirect(http.StatusSeeOther, "/postjob?posted=1")
		return
	}

	data := newPostPage()
	var validationErr *form.ValidationError
	if errors.As(err, &validationErr) {
		data.Values = submitted
		data.Errors = validationErr.Errors.Map()
		c.HTML(http.StatusBadRequest, "postjob.html", data)
		return
	}

	s.logger.Error().Err(err).Str("title", submitted.JobTitle).Msg("failed to post job")
	data.Failed = true
	c.HTML(http.StatusBadGateway, "postjob.html", data)
}
