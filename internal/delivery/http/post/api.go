package post_http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/quantity-digital/qd-post/internal/logger"
	"github.com/quantity-digital/qd-post/internal/model"
	gateway_service "github.com/quantity-digital/qd-post/internal/service/gateway"
)

var validate = validator.New()

// PostHTTPService exposes the gateway operations over HTTP.
type PostHTTPService struct {
	gateway     gateway_service.Service
	log         *logger.Logger
	maxFileSize int64

	listPostsHandler    *ListPostsHandler
	searchPostsHandler  *SearchPostsHandler
	getPostHandler      *GetPostHandler
	createPostHandler   *CreatePostHandler
	updateFieldsHandler *UpdateFieldsHandler
	deletePostHandler   *DeletePostHandler
	uploadHandler       *UploadHandler
}

func NewPostHTTPService(gateway gateway_service.Service, maxFileSize int64, log *logger.Logger) *PostHTTPService {
	return &PostHTTPService{
		gateway:             gateway,
		log:                 log,
		maxFileSize:         maxFileSize,
		listPostsHandler:    NewListPostsHandler(gateway, log),
		searchPostsHandler:  NewSearchPostsHandler(gateway, log),
		getPostHandler:      NewGetPostHandler(gateway, validate, log),
		createPostHandler:   NewCreatePostHandler(gateway, validate, log),
		updateFieldsHandler: NewUpdateFieldsHandler(gateway, validate, log),
		deletePostHandler:   NewDeletePostHandler(gateway, validate, log),
		uploadHandler:       NewUploadHandler(gateway, maxFileSize, log),
	}
}

func (s *PostHTTPService) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/posts", s.listPostsHandler.ListPosts)
	r.Get("/posts/search", s.searchPostsHandler.SearchPosts)
	r.Get("/posts/first", s.getPostHandler.GetFirstPost)
	r.Get("/posts/{id}", s.getPostHandler.GetPostByID)
	r.Post("/posts", s.createPostHandler.CreatePost)
	r.Patch("/posts/{id}/fields", s.updateFieldsHandler.UpdateFields)
	r.Delete("/posts/{id}", s.deletePostHandler.DeletePost)
	r.Post("/posts/{id}/attachments", s.uploadHandler.AttachUpload)
	r.Post("/posts/{id}/attachments/batch", s.uploadHandler.AttachUploads)
	return r
}

// postIDParam parses the {id} route parameter.
func postIDParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// queryFromRequest maps list-style query parameters onto a PostQuery. Absent
// parameters stay zero so the gateway defaults apply.
func queryFromRequest(r *http.Request) model.PostQuery {
	q := model.PostQuery{
		Type:   r.URL.Query().Get("type"),
		Status: r.URL.Query().Get("status"),
		Search: r.URL.Query().Get("q"),
	}
	if raw := r.URL.Query().Get("parent_id"); raw != "" {
		if parentID, err := strconv.ParseInt(raw, 10, 64); err == nil {
			q.ParentID = &parentID
		}
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if limit, err := strconv.Atoi(raw); err == nil {
			q.Limit = &limit
		}
	}
	if raw := r.URL.Query().Get("offset"); raw != "" {
		if offset, err := strconv.Atoi(raw); err == nil {
			q.Offset = &offset
		}
	}
	return q
}
