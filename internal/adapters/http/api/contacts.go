package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/okian/contacts/internal/domain/model"
	"github.com/okian/contacts/internal/domain/usecase"
	"github.com/okian/contacts/pkg/logger"
)

// Response messages of the /contact resource.
const (
	MsgFetchFailed    = "Error fetching data"
	MsgCreateFailed   = "Error creating contact"
	MsgCreated        = "Contact created"
	MsgInvalidRequest = "Invalid request body"
)

// maxContactBodyBytes bounds POST /contact payloads.
const maxContactBodyBytes = 1 << 20

// ContactsHandler serves the /contact resource by delegating to use cases.
// It holds no state besides its collaborators.
type ContactsHandler struct {
	getAll usecase.GetAllContactsUseCase
	create usecase.CreateContactUseCase
	logger logger.Logger
}

// NewContactsHandler creates a handler over the two contact use cases.
func NewContactsHandler(getAll usecase.GetAllContactsUseCase, create usecase.CreateContactUseCase, opts ...Option) *ContactsHandler {
	o := applyOptions(opts)
	return &ContactsHandler{
		getAll: getAll,
		create: create,
		logger: o.logger,
	}
}

// Routes returns the /contact sub-router; mount it at /contact.
func (h *ContactsHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.HandleGetAll)
	r.Head("/", h.HandleGetAll)
	r.Post("/", h.HandleCreate)
	return r
}

// HandleGetAll handles GET /contact requests.
func (h *ContactsHandler) HandleGetAll(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_contacts"
	if h.getAll == nil {
		h.fail(r, w, MsgFetchFailed, NewKind(op, ErrNoDependency))
		return
	}

	contacts, err := h.getAll.Execute(r.Context())
	if err != nil {
		h.fail(r, w, MsgFetchFailed, WrapKind(op, ErrUseCase, err))
		return
	}
	if contacts == nil {
		contacts = []model.Contact{}
	}
	writeJSON(w, http.StatusOK, contacts)
}

// HandleCreate handles POST /contact requests.
func (h *ContactsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	const op = "api.create_contact"

	c, err := decodeContact(http.MaxBytesReader(w, r.Body, maxContactBodyBytes))
	if err != nil {
		h.logger.Debug(r.Context(), "rejected contact body", logger.Error(WrapKind(op, ErrBadRequest, err)))
		writeMessage(w, http.StatusBadRequest, MsgInvalidRequest)
		return
	}
	if h.create == nil {
		h.fail(r, w, MsgCreateFailed, NewKind(op, ErrNoDependency))
		return
	}

	// The boolean result carries no extra meaning for the response.
	if _, err := h.create.Execute(r.Context(), c); err != nil {
		h.fail(r, w, MsgCreateFailed, WrapKind(op, ErrUseCase, err))
		return
	}
	writeMessage(w, http.StatusCreated, MsgCreated)
}

// decodeContact reads exactly one JSON object from body.
func decodeContact(body io.Reader) (model.Contact, error) {
	var c model.Contact
	dec := json.NewDecoder(body)
	if err := dec.Decode(&c); err != nil {
		return model.Contact{}, err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return model.Contact{}, errTrailingData
	}
	return c, nil
}

// fail logs err and answers 500 with a fixed message; the cause never reaches the client.
func (h *ContactsHandler) fail(r *http.Request, w http.ResponseWriter, msg string, err error) {
	h.logger.Error(r.Context(), msg,
		logger.String("method", r.Method),
		logger.String("path", r.URL.Path),
		logger.Error(err),
	)
	writeMessage(w, http.StatusInternalServerError, msg)
}
