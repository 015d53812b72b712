package api

import (
	"net/http"
	"strconv"
	"time"

	"choppinzskys-backend/internal/database"
	"choppinzskys-backend/pkg/models"

	"github.com/gin-gonic/gin"
)

// inquiryCollection is the single collection this surface writes to.
const inquiryCollection = "inquiry"

const defaultListLimit = 10

type InquiryHandler struct {
	Store *database.Store
}

func NewInquiryHandler(store *database.Store) *InquiryHandler {
	return &InquiryHandler{Store: store}
}

// CreateInquiry validates the submission and persists it. Validation failures
// never reach the store; store failures come back as a plain 500.
func (h *InquiryHandler) CreateInquiry(c *gin.Context) {
	var inquiry models.Inquiry
	if err := c.ShouldBindJSON(&inquiry); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	inquiry.SubmittedAt = time.Now().UTC()

	id, err := h.Store.CreateDocument(inquiryCollection, inquiry)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok", "id": id})
}

// ListInquiries returns up to ?limit= stored inquiries (default 10), each with
// the store-internal identifier replaced by the normalized string "id" field.
func (h *InquiryHandler) ListInquiries(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultListLimit)))
	if err != nil {
		limit = defaultListLimit
	}
	if limit < 0 {
		limit = 0
	}

	docs, err := h.Store.GetDocuments(inquiryCollection, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	records := make([]map[string]any, 0, len(docs))
	for _, doc := range docs {
		record := make(map[string]any, len(doc.Fields)+1)
		for k, v := range doc.Fields {
			record[k] = v
		}
		record["id"] = string(doc.ID)
		records = append(records, record)
	}

	c.JSON(http.StatusOK, records)
}
