package service

import (
	"strings"

	"github.com/ahmetberacelik/legalcase/internal/database"
	"github.com/ahmetberacelik/legalcase/internal/repository"
)

const defaultContentType = "text/plain"

// DocumentService manages documents attached to cases.
type DocumentService struct {
	documents repository.DocumentRepository
	cases     repository.CaseRepository
}

func NewDocumentService(documents repository.DocumentRepository, cases repository.CaseRepository) *DocumentService {
	return &DocumentService{documents: documents, cases: cases}
}

// CreateDocument attaches a document to an existing case with content type
// "text/plain".
func (s *DocumentService) CreateDocument(caseID uint, title string, docType database.DocumentType, content string) (*database.Document, error) {
	if strings.TrimSpace(title) == "" {
		return nil, validationf("document title must not be empty")
	}
	if !docType.Valid() {
		return nil, validationf("unknown document type %q", docType)
	}

	record, err := s.cases.FindByID(caseID)
	if err != nil {
		return nil, storage(err)
	}
	if record == nil {
		return nil, validationf("case with id %d does not exist", caseID)
	}

	doc := &database.Document{
		CaseID:      caseID,
		Title:       title,
		Type:        docType,
		Content:     content,
		ContentType: defaultContentType,
	}

	if err := s.documents.Create(doc); err != nil {
		return nil, storage(err)
	}
	return doc, nil
}

// UpdateDocument replaces title, type and content; the content type is left
// untouched.
func (s *DocumentService) UpdateDocument(id uint, title string, docType database.DocumentType, content string) (*database.Document, error) {
	doc, err := s.documents.FindByID(id)
	if err != nil {
		return nil, storage(err)
	}
	if doc == nil {
		return nil, validationf("document with id %d does not exist", id)
	}

	if strings.TrimSpace(title) == "" {
		return nil, validationf("document title must not be empty")
	}
	if !docType.Valid() {
		return nil, validationf("unknown document type %q", docType)
	}

	doc.Title = title
	doc.Type = docType
	doc.Content = content

	if err := s.documents.Update(doc); err != nil {
		return nil, storage(err)
	}
	return doc, nil
}

// UpdateDocumentContentType is the explicit path for changing a document's
// content type.
func (s *DocumentService) UpdateDocumentContentType(id uint, contentType string) (*database.Document, error) {
	doc, err := s.documents.FindByID(id)
	if err != nil {
		return nil, storage(err)
	}
	if doc == nil {
		return nil, validationf("document with id %d does not exist", id)
	}

	if strings.TrimSpace(contentType) == "" {
		return nil, validationf("content type must not be empty")
	}

	doc.ContentType = contentType
	if err := s.documents.Update(doc); err != nil {
		return nil, storage(err)
	}
	return doc, nil
}

func (s *DocumentService) DeleteDocument(id uint) error {
	doc, err := s.documents.FindByID(id)
	if err != nil {
		return storage(err)
	}
	if doc == nil {
		return validationf("document with id %d does not exist", id)
	}

	if _, err := s.documents.Delete(id); err != nil {
		return storage(err)
	}
	return nil
}

// GetDocumentByID returns nil when no document matches.
func (s *DocumentService) GetDocumentByID(id uint) (*database.Document, error) {
	doc, err := s.documents.FindByID(id)
	if err != nil {
		return nil, storage(err)
	}
	return doc, nil
}

func (s *DocumentService) GetAllDocuments() ([]database.Document, error) {
	docs, err := s.documents.FindAll()
	if err != nil {
		return nil, storage(err)
	}
	return docs, nil
}

func (s *DocumentService) GetDocumentsByCase(caseID uint) ([]database.Document, error) {
	record, err := s.cases.FindByID(caseID)
	if err != nil {
		return nil, storage(err)
	}
	if record == nil {
		return nil, validationf("case with id %d does not exist", caseID)
	}

	docs, err := s.documents.FindByCase(caseID)
	if err != nil {
		return nil, storage(err)
	}
	return docs, nil
}

func (s *DocumentService) GetDocumentsByType(docType database.DocumentType) ([]database.Document, error) {
	docs, err := s.documents.FindByType(docType)
	if err != nil {
		return nil, storage(err)
	}
	return docs, nil
}

func (s *DocumentService) SearchDocumentsByTitle(query string) ([]database.Document, error) {
	docs, err := s.documents.SearchByTitle(query)
	if err != nil {
		return nil, storage(err)
	}
	return docs, nil
}
