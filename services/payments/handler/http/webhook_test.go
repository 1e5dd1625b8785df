package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/campusbid/campusbid/services/payments/mocks"
)

func setupWebhookHandlerTest(t *testing.T) (*WebhookHandler, *mocks.MockTransactionUC, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockTransactionUC(ctrl)
	return NewWebhookHandler(mockUC), mockUC, ctrl
}

func postCallback(e *echo.Echo, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/webhooks/payments", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestHandleCallback_Success(t *testing.T) {
	handler, mockUC, ctrl := setupWebhookHandlerTest(t)
	defer ctrl.Finish()

	mockUC.EXPECT().ProcessCallback(gomock.Any(), gomock.Any()).Return(nil)

	c, rec := postCallback(echo.New(), `{"transaction_id":"TXN-1","status":"success"}`)
	err := handler.HandleCallback(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandleCallback_ProcessingFailureStillAcknowledges(t *testing.T) {
	handler, mockUC, ctrl := setupWebhookHandlerTest(t)
	defer ctrl.Finish()

	// The provider retries on any non-200, so internal failures are logged
	// and acknowledged rather than surfaced
	mockUC.EXPECT().ProcessCallback(gomock.Any(), gomock.Any()).Return(errors.New("db down"))

	c, rec := postCallback(echo.New(), `{"transaction_id":"TXN-1","status":"success"}`)
	err := handler.HandleCallback(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandleCallback_MalformedPayload(t *testing.T) {
	handler, _, ctrl := setupWebhookHandlerTest(t)
	defer ctrl.Finish()

	c, rec := postCallback(echo.New(), `{not json`)
	err := handler.HandleCallback(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
