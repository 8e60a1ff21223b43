// Package clienttest runs an in-process CitiSevak backend fixture for client
// and feed tests: real HTTP, real filtering and pagination, deterministic
// data, and per-route call counting.
package clienttest

import (
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"citisevak-cli/models"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Fixture credentials accepted by the login endpoint.
const (
	TestEmail    = "asha.patel@example.com"
	TestPassword = "sarkar-seva-123"

	jwtSecret = "clienttest-secret"
)

// Server is a fake backend over httptest.
type Server struct {
	mu     sync.Mutex
	issues []models.Issue
	votes  map[uuid.UUID]map[uuid.UUID]bool
	calls  map[string]int

	user models.User
	srv  *httptest.Server
}

// New starts the fixture server. Close it when done.
func New() *Server {
	gin.SetMode(gin.TestMode)

	s := &Server{
		votes: make(map[uuid.UUID]map[uuid.UUID]bool),
		calls: make(map[string]int),
		user: models.User{
			ID:       uuid.New(),
			Name:     "Asha Patel",
			Email:    TestEmail,
			District: "Anand",
		},
	}

	r := gin.New()
	r.Use(s.countCalls())

	r.POST("/auth/signup", s.handleSignup)
	r.POST("/auth/login", s.handleLogin)
	r.POST("/auth/logout", func(c *gin.Context) { c.Status(http.StatusOK) })

	r.GET("/issues", s.handleListIssues)
	r.GET("/issues/:id", s.handleGetIssue)
	r.POST("/issues", s.authRequired(), s.handleCreateIssue)
	r.PATCH("/issues/:id", s.authRequired(), s.handleUpdateIssue)
	r.DELETE("/issues/:id", s.authRequired(), s.handleDeleteIssue)

	r.POST("/vote/:id", s.authRequired(), s.handleVote)
	r.DELETE("/vote/:id", s.authRequired(), s.handleUnvote)

	r.GET("/user/me", s.authRequired(), s.handleMe)

	s.srv = httptest.NewServer(r)
	return s
}

// URL is the fixture's base URL.
func (s *Server) URL() string { return s.srv.URL }

// Close shuts the fixture down.
func (s *Server) Close() { s.srv.Close() }

// Seed replaces the issue set.
func (s *Server) Seed(issues []models.Issue) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.issues = append([]models.Issue(nil), issues...)
}

// UserID is the fixture account's id.
func (s *Server) UserID() uuid.UUID { return s.user.ID }

// Calls reports how many requests hit the given method and path pattern,
// e.g. "GET /issues".
func (s *Server) Calls(route string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[route]
}

func (s *Server) countCalls() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		route := c.Request.Method + " " + c.FullPath()
		s.mu.Lock()
		s.calls[route]++
		s.mu.Unlock()
	}
}

// authRequired validates the bearer token and stashes the user id, the same
// flow the production backend applies.
func (s *Server) authRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "No authorization token provided"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			return []byte(jwtSecret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			return
		}
		c.Set("user_id", claims["user_id"])
		c.Next()
	}
}

// MintToken signs a token the way the backend does. Exposed so session tests
// can build tokens with arbitrary expiries.
func MintToken(userID string, expiresIn time.Duration) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(expiresIn).Unix(),
	})
	signed, _ := token.SignedString([]byte(jwtSecret))
	return signed
}

func (s *Server) handleSignup(c *gin.Context) {
	var req models.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := models.User{
		ID:        uuid.New(),
		Name:      req.Name,
		Email:     req.Email,
		District:  req.District,
		CreatedAt: time.Now(),
	}
	c.JSON(http.StatusCreated, models.AuthResponse{
		AccessToken: MintToken(user.ID.String(), 72*time.Hour),
		TokenType:   "bearer",
		User:        user,
	})
}

func (s *Server) handleLogin(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Email != TestEmail || req.Password != TestPassword {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	c.JSON(http.StatusOK, models.AuthResponse{
		AccessToken: MintToken(s.user.ID.String(), 72*time.Hour),
		TokenType:   "bearer",
		User:        s.user,
	})
}

func (s *Server) handleMe(c *gin.Context) {
	c.JSON(http.StatusOK, s.user)
}

func (s *Server) handleListIssues(c *gin.Context) {
	search := c.Query("search")
	district := c.Query("district")
	category := c.Query("category")
	status := c.Query("status")
	sortBy := c.DefaultQuery("sort_by", "created_at")
	sortOrder := c.DefaultQuery("sort_order", "desc")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	s.mu.Lock()
	matched := make([]models.Issue, 0, len(s.issues))
	for _, issue := range s.issues {
		if search != "" &&
			!strings.Contains(strings.ToLower(issue.Title), strings.ToLower(search)) &&
			!strings.Contains(strings.ToLower(issue.Description), strings.ToLower(search)) {
			continue
		}
		if district != "" {
			if issue.Authority == nil || !strings.EqualFold(issue.Authority.District, district) {
				continue
			}
		}
		if category != "" && !strings.EqualFold(issue.Category, category) {
			continue
		}
		if status != "" {
			n, err := strconv.Atoi(status)
			if err != nil {
				s.mu.Unlock()
				c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": "status must be an integer"})
				return
			}
			if int(issue.Status) != n {
				continue
			}
		}
		matched = append(matched, issue)
	}
	s.mu.Unlock()

	asc := sortOrder == "asc"
	sort.SliceStable(matched, func(i, j int) bool {
		var less bool
		switch sortBy {
		case "updated_at":
			less = matched[i].UpdatedAt.Before(matched[j].UpdatedAt)
		case "priority":
			less = matched[i].Priority < matched[j].Priority
		case "title":
			less = matched[i].Title < matched[j].Title
		default:
			less = matched[i].CreatedAt.Before(matched[j].CreatedAt)
		}
		if asc {
			return less
		}
		return !less
	})

	total := len(matched)
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	c.JSON(http.StatusOK, models.IssueList{
		Issues:  matched[start:end],
		Total:   total,
		Page:    page,
		Limit:   limit,
		HasMore: end < total,
	})
}

func (s *Server) findIssue(id uuid.UUID) (int, bool) {
	for i, issue := range s.issues {
		if issue.ID == id {
			return i, true
		}
	}
	return 0, false
}

func (s *Server) handleGetIssue(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid issue ID"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.findIssue(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Issue not found"})
		return
	}
	c.JSON(http.StatusOK, s.issues[i])
}

func (s *Server) handleCreateIssue(c *gin.Context) {
	var req models.CreateIssueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	now := time.Now()
	issue := models.Issue{
		ID:          uuid.New(),
		UserID:      s.user.ID,
		AuthorityID: req.AuthorityID,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Location:    req.Location,
		Priority:    req.Priority,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		Status:      models.StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	s.mu.Lock()
	s.issues = append(s.issues, issue)
	s.mu.Unlock()

	c.JSON(http.StatusCreated, gin.H{"message": "Issue created successfully", "issue": issue})
}

func (s *Server) handleUpdateIssue(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid issue ID"})
		return
	}

	var req models.UpdateIssueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.findIssue(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Issue not found"})
		return
	}

	issue := &s.issues[i]
	if req.Title != nil {
		issue.Title = *req.Title
	}
	if req.Description != nil {
		issue.Description = *req.Description
	}
	if req.Category != nil {
		issue.Category = *req.Category
	}
	if req.Location != nil {
		issue.Location = *req.Location
	}
	if req.Status != nil {
		issue.Status = *req.Status
	}
	if req.Priority != nil {
		issue.Priority = *req.Priority
	}
	if req.Latitude != nil {
		issue.Latitude = req.Latitude
	}
	if req.Longitude != nil {
		issue.Longitude = req.Longitude
	}
	issue.UpdatedAt = time.Now()

	c.JSON(http.StatusOK, *issue)
}

func (s *Server) handleDeleteIssue(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid issue ID"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.findIssue(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Issue not found"})
		return
	}

	s.issues = append(s.issues[:i], s.issues[i+1:]...)
	delete(s.votes, id)
	c.Status(http.StatusNoContent)
}

func (s *Server) voterID(c *gin.Context) uuid.UUID {
	raw, _ := c.Get("user_id")
	str, _ := raw.(string)
	id, err := uuid.Parse(str)
	if err != nil {
		return s.user.ID
	}
	return id
}

func (s *Server) handleVote(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid issue ID"})
		return
	}
	voter := s.voterID(c)

	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.findIssue(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Issue not found"})
		return
	}

	if s.votes[id] == nil {
		s.votes[id] = make(map[uuid.UUID]bool)
	}
	if s.votes[id][voter] {
		c.JSON(http.StatusOK, models.VoteResult{
			Message:      "You have already voted on this issue",
			TotalVotes:   s.issues[i].VoteCount,
			UserHasVoted: true,
		})
		return
	}

	s.votes[id][voter] = true
	s.issues[i].VoteCount++

	vote := models.Vote{ID: uuid.New(), UserID: voter, IssueID: id}
	c.JSON(http.StatusCreated, models.VoteResult{
		Message:      "Vote added successfully",
		Vote:         &vote,
		TotalVotes:   s.issues[i].VoteCount,
		UserHasVoted: true,
	})
}

func (s *Server) handleUnvote(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid issue ID"})
		return
	}
	voter := s.voterID(c)

	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.findIssue(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Issue not found"})
		return
	}

	if !s.votes[id][voter] {
		c.JSON(http.StatusOK, models.VoteResult{
			Message:      "You haven't voted on this issue",
			TotalVotes:   s.issues[i].VoteCount,
			UserHasVoted: false,
		})
		return
	}

	delete(s.votes[id], voter)
	s.issues[i].VoteCount--

	c.JSON(http.StatusOK, models.VoteResult{
		Message:      "Vote removed successfully",
		TotalVotes:   s.issues[i].VoteCount,
		UserHasVoted: false,
	})
}
