package server

import (
	"net/http"
	"testing"

	"quill/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateComment(t *testing.T) {
	s, deps := newTestServer(t)

	app := fiber.New()
	asUser(app, 2)
	app.Post("/posts/:id/comments", s.CreateComment)

	tests := []struct {
		name           string
		target         string
		body           map[string]string
		mockSetup      func()
		expectedStatus int
	}{
		{
			name:   "Success",
			target: "/posts/4/comments",
			body:   map[string]string{"text": "nice post"},
			mockSetup: func() {
				deps.posts.On("GetByID", mock.Anything, uint(4)).
					Return(&models.Post{ID: 4, Text: "hello"}, nil).Once()
				deps.comments.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
				deps.comments.On("GetByID", mock.Anything, mock.Anything).
					Return(&models.Comment{ID: 1, PostID: 4, AuthorID: 2, Text: "nice post"}, nil).Once()
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:   "Missing Post",
			target: "/posts/99/comments",
			body:   map[string]string{"text": "hello?"},
			mockSetup: func() {
				deps.posts.On("GetByID", mock.Anything, uint(99)).
					Return(nil, models.NewNotFoundError("Post", uint(99))).Once()
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "Empty Text",
			target:         "/posts/4/comments",
			body:           map[string]string{"text": "  "},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			resp, err := app.Test(jsonRequest(t, http.MethodPost, tt.target, tt.body))
			require.NoError(t, err)
			defer func() { _ = resp.Body.Close() }()
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
		})
	}
}
