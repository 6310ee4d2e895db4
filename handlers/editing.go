package handlers

import (
	"context"
	"net/http"

	"github.com/camden-git/pvtheatresbackend/services"
)

func create[In, Out any](add func(context.Context, In) (*Out, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in In
		if !decodeJSON(w, r, &in) {
			return
		}
		record, err := add(r.Context(), in)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, record)
	}
}

// update applies the payload to the {id} record on behalf of the
// authenticated editor.
func update[In, Out any](apply func(context.Context, uint, uint, In) (*Out, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := urlID(w, r, "id")
		if !ok {
			return
		}
		var in In
		if !decodeJSON(w, r, &in) {
			return
		}
		record, err := apply(r.Context(), actorID(r), id, in)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, record)
	}
}

func remove(del func(context.Context, uint) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := urlID(w, r, "id")
		if !ok {
			return
		}
		if err := del(r.Context(), id); err != nil {
			writeServiceError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// EditHandler exposes the mutations of the archive. Every route it serves
// sits behind AuthMiddleware.
type EditHandler struct {
	Reports   *services.ProcesVerbalService
	Persons   *services.PersonService
	Addresses *services.AddressService
	Sources   *services.SourceService
	Objects   *services.ObjectService
	Rooms     *services.RoomService
}

func (h *EditHandler) CreateProcesVerbal() http.HandlerFunc { return create(h.Reports.Add) }
func (h *EditHandler) UpdateProcesVerbal() http.HandlerFunc { return update(h.Reports.Update) }
func (h *EditHandler) DeleteProcesVerbal() http.HandlerFunc { return remove(h.Reports.Delete) }

func (h *EditHandler) CreatePerson() http.HandlerFunc { return create(h.Persons.Add) }
func (h *EditHandler) UpdatePerson() http.HandlerFunc { return update(h.Persons.Update) }
func (h *EditHandler) DeletePerson() http.HandlerFunc { return remove(h.Persons.Delete) }

func (h *EditHandler) CreateAddress() http.HandlerFunc { return create(h.Addresses.Add) }
func (h *EditHandler) UpdateAddress() http.HandlerFunc { return update(h.Addresses.Update) }
func (h *EditHandler) DeleteAddress() http.HandlerFunc { return remove(h.Addresses.Delete) }

func (h *EditHandler) CreateSource() http.HandlerFunc { return create(h.Sources.Add) }
func (h *EditHandler) UpdateSource() http.HandlerFunc { return update(h.Sources.Update) }
func (h *EditHandler) DeleteSource() http.HandlerFunc { return remove(h.Sources.Delete) }

func (h *EditHandler) CreateObject() http.HandlerFunc { return create(h.Objects.Add) }
func (h *EditHandler) UpdateObject() http.HandlerFunc { return update(h.Objects.Update) }
func (h *EditHandler) DeleteObject() http.HandlerFunc { return remove(h.Objects.Delete) }

func (h *EditHandler) UpdateRoom() http.HandlerFunc { return update(h.Rooms.Update) }

type residencePayload struct {
	AddressID uint `json:"address_id"`
}

// LinkAddress records a residence of the {id} person.
func (h *EditHandler) LinkAddress(w http.ResponseWriter, r *http.Request) {
	personID, ok := urlID(w, r, "id")
	if !ok {
		return
	}
	var payload residencePayload
	if !decodeJSON(w, r, &payload) {
		return
	}
	if payload.AddressID == 0 {
		WriteAPIError(w, http.StatusBadRequest, "invalid_payload", "Missing required field: address_id")
		return
	}

	if err := h.Persons.LinkAddress(r.Context(), actorID(r), personID, payload.AddressID); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *EditHandler) UnlinkAddress(w http.ResponseWriter, r *http.Request) {
	personID, ok := urlID(w, r, "id")
	if !ok {
		return
	}
	addressID, ok := urlID(w, r, "address_id")
	if !ok {
		return
	}

	if err := h.Persons.UnlinkAddress(r.Context(), actorID(r), personID, addressID); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
