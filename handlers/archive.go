package handlers

import (
	"context"
	"net/http"

	"github.com/camden-git/pvtheatresbackend/listing"
)

// ArchiveHandler serves the public read side of the archive: listings,
// detail views and keyword search.
type ArchiveHandler struct {
	Listing *listing.Service
}

func pageParam(r *http.Request) int {
	return listing.ParsePage(r.URL.Query().Get("page"))
}

func paged[T any](fetch func(context.Context, int) (*listing.Page[T], error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := fetch(r.Context(), pageParam(r))
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, page)
	}
}

func all[T any](fetch func(context.Context) ([]T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := fetch(r.Context())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		if items == nil {
			items = []T{}
		}
		writeJSON(w, http.StatusOK, items)
	}
}

// detail serves the record named by the {id} path parameter.
func detail[T any](fetch func(context.Context, uint) (*T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := urlID(w, r, "id")
		if !ok {
			return
		}
		record, err := fetch(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, record)
	}
}

func (h *ArchiveHandler) ListProcesVerbaux() http.HandlerFunc { return paged(h.Listing.ProcesVerbaux) }
func (h *ArchiveHandler) ListPersons() http.HandlerFunc       { return paged(h.Listing.Persons) }
func (h *ArchiveHandler) ListCommissioners() http.HandlerFunc { return paged(h.Listing.Commissioners) }
func (h *ArchiveHandler) ListSources() http.HandlerFunc       { return paged(h.Listing.Sources) }
func (h *ArchiveHandler) ListAddresses() http.HandlerFunc     { return paged(h.Listing.Addresses) }
func (h *ArchiveHandler) ListTheatres() http.HandlerFunc      { return all(h.Listing.Theatres) }
func (h *ArchiveHandler) ListObjects() http.HandlerFunc       { return all(h.Listing.Objects) }
func (h *ArchiveHandler) ListRooms() http.HandlerFunc         { return all(h.Listing.Rooms) }

func (h *ArchiveHandler) GetProcesVerbal() http.HandlerFunc { return detail(h.Listing.ProcesVerbal) }
func (h *ArchiveHandler) GetTheatre() http.HandlerFunc      { return detail(h.Listing.Theatre) }
func (h *ArchiveHandler) GetRoom() http.HandlerFunc         { return detail(h.Listing.Room) }
func (h *ArchiveHandler) GetPerson() http.HandlerFunc       { return detail(h.Listing.Person) }
func (h *ArchiveHandler) GetSource() http.HandlerFunc       { return detail(h.Listing.Source) }
func (h *ArchiveHandler) GetObject() http.HandlerFunc       { return detail(h.Listing.Object) }
func (h *ArchiveHandler) GetAddress() http.HandlerFunc      { return detail(h.Listing.Address) }

type SearchResponse struct {
	Keyword string        `json:"keyword"`
	Hits    []listing.Hit `json:"hits"`
}

func (h *ArchiveHandler) Search(w http.ResponseWriter, r *http.Request) {
	keyword := r.URL.Query().Get("keyword")
	hits, err := h.Listing.Search(r.Context(), keyword)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, SearchResponse{Keyword: keyword, Hits: hits})
}
