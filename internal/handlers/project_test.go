package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gw-smarthome-designer/internal/models"
	"github.com/sbilibin2017/gw-smarthome-designer/internal/services"
)

func TestProjectHandler(t *testing.T) {
	userID := uuid.New()
	projectID := uuid.New()

	tests := []struct {
		name            string
		id              string
		mockSetup       func(m *MockProjectGetter)
		expectedCode    int
		expectedMessage string
	}{
		{
			name: "success",
			id:   projectID.String(),
			mockSetup: func(m *MockProjectGetter) {
				m.EXPECT().Get(gomock.Any(), userID, projectID).Return(&models.Project{
					ID:    projectID,
					Name:  "Flat",
					Scene: json.RawMessage(`{"room":{"name":"Вітальня"}}`),
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:            "malformed id",
			id:              "42",
			mockSetup:       func(m *MockProjectGetter) {},
			expectedCode:    http.StatusNotFound,
			expectedMessage: "Project not found",
		},
		{
			name: "not found",
			id:   projectID.String(),
			mockSetup: func(m *MockProjectGetter) {
				m.EXPECT().Get(gomock.Any(), userID, projectID).Return(nil, services.ErrProjectNotFound)
			},
			expectedCode:    http.StatusNotFound,
			expectedMessage: "Project not found",
		},
		{
			name: "forbidden",
			id:   projectID.String(),
			mockSetup: func(m *MockProjectGetter) {
				m.EXPECT().Get(gomock.Any(), userID, projectID).Return(nil, services.ErrProjectForbidden)
			},
			expectedCode:    http.StatusForbidden,
			expectedMessage: "Access denied",
		},
		{
			name: "corrupted",
			id:   projectID.String(),
			mockSetup: func(m *MockProjectGetter) {
				m.EXPECT().Get(gomock.Any(), userID, projectID).Return(nil, services.ErrCorruptedData)
			},
			expectedCode:    http.StatusInternalServerError,
			expectedMessage: "Project data is corrupted",
		},
		{
			name: "internal error",
			id:   projectID.String(),
			mockSetup: func(m *MockProjectGetter) {
				m.EXPECT().Get(gomock.Any(), userID, projectID).Return(nil, errors.New("db down"))
			},
			expectedCode:    http.StatusInternalServerError,
			expectedMessage: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockProjectGetter(ctrl)
			tt.mockSetup(mockSvc)

			req := httptest.NewRequest(http.MethodGet, "/api/project/"+tt.id, nil)
			req = withURLParam(withUser(req, userID), "id", tt.id)
			rr := httptest.NewRecorder()

			NewProjectHandler(mockSvc).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedCode == http.StatusOK {
				assert.JSONEq(t, `{
					"status": "success",
					"id": "`+projectID.String()+`",
					"name": "Flat",
					"scene": {"room": {"name": "Вітальня"}}
				}`, rr.Body.String())
				return
			}
			body := decodeBody(t, rr)
			assert.Equal(t, "error", body["status"])
			assert.Equal(t, tt.expectedMessage, body["message"])
		})
	}
}

func TestProjectHandler_Unauthenticated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rr := httptest.NewRecorder()
	req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/project/x", nil), "id", uuid.NewString())

	NewProjectHandler(NewMockProjectGetter(ctrl)).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
