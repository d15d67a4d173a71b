package handlers

import (
	"encoding/json"

	"github.com/pocketbase/pocketbase/core"
	"go.uber.org/zap"

	"webquote/logging"
)

// Toast types understood by the layout's showToast listener.
const (
	ToastSuccess = "success"
	ToastError   = "error"
	ToastInfo    = "info"
	ToastWarning = "warning"
)

// SetToast adds a showToast event to the HX-Trigger response header. Events
// already in the header are kept; a header that is not a JSON object is
// replaced.
func SetToast(e *core.RequestEvent, toastType string, message string) {
	triggers := map[string]any{}
	if existing := e.Response.Header().Get("HX-Trigger"); existing != "" {
		if err := json.Unmarshal([]byte(existing), &triggers); err != nil {
			logging.Warn("toast: replacing non-JSON HX-Trigger", zap.String("existing", existing))
			triggers = map[string]any{}
		}
	}
	triggers["showToast"] = map[string]string{"message": message, "type": toastType}

	data, err := json.Marshal(triggers)
	if err != nil {
		logging.Warn("toast: could not encode HX-Trigger", zap.Error(err))
		return
	}
	e.Response.Header().Set("HX-Trigger", string(data))
}

// ErrorToast answers with status and message: a toast for HTMX (with
// HX-Reswap: none so the target keeps its content), {"message": ...} for
// JSON clients and plain text otherwise.
func ErrorToast(e *core.RequestEvent, status int, message string) error {
	SetToast(e, ToastError, message)
	e.Response.Header().Set("HX-Reswap", "none")
	if e.Request != nil && wantsJSON(e.Request) {
		return e.JSON(status, map[string]string{"message": message})
	}
	return e.String(status, message)
}
