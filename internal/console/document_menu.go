package console

import (
	"github.com/ahmetberacelik/legalcase/internal/database"
)

func (c *Console) documentMenu() bool {
	for {
		c.printf("\n--- Documents ---\n")
		c.printf("1. Create document\n")
		c.printf("2. Update document\n")
		c.printf("3. Delete document\n")
		c.printf("4. List all documents\n")
		c.printf("5. Documents of a case\n")
		c.printf("6. Documents by type\n")
		c.printf("7. Search by title\n")
		c.printf("0. Back\n")

		choice, ok := c.promptInt("Select an option")
		if !ok {
			return false
		}

		switch choice {
		case 1:
			if !c.createDocument() {
				return false
			}
		case 2:
			if !c.updateDocument() {
				return false
			}
		case 3:
			id, ok := c.promptUint("Document id")
			if !ok {
				return false
			}
			if err := c.documents.DeleteDocument(id); err != nil {
				c.reportError(err)
			} else {
				c.printf("Document deleted\n")
			}
		case 4:
			records, err := c.documents.GetAllDocuments()
			if err != nil {
				c.reportError(err)
			} else {
				c.printDocuments(records)
			}
		case 5:
			caseID, ok := c.promptUint("Case id")
			if !ok {
				return false
			}
			records, err := c.documents.GetDocumentsByCase(caseID)
			if err != nil {
				c.reportError(err)
			} else {
				c.printDocuments(records)
			}
		case 6:
			docType, ok := c.pickDocumentType()
			if !ok {
				return false
			}
			records, err := c.documents.GetDocumentsByType(docType)
			if err != nil {
				c.reportError(err)
			} else {
				c.printDocuments(records)
			}
		case 7:
			query, ok := c.prompt("Title contains")
			if !ok {
				return false
			}
			records, err := c.documents.SearchDocumentsByTitle(query)
			if err != nil {
				c.reportError(err)
			} else {
				c.printDocuments(records)
			}
		case 0:
			return true
		default:
			c.printf("Unknown option\n")
		}
	}
}

func (c *Console) createDocument() bool {
	caseID, ok := c.promptUint("Case id")
	if !ok {
		return false
	}
	title, ok := c.prompt("Title")
	if !ok {
		return false
	}
	docType, ok := c.pickDocumentType()
	if !ok {
		return false
	}
	content, ok := c.prompt("Content")
	if !ok {
		return false
	}

	doc, err := c.documents.CreateDocument(caseID, title, docType, content)
	if err != nil {
		c.reportError(err)
		return true
	}
	c.printf("Created document %s (id %d)\n", doc.Title, doc.ID)
	return true
}

func (c *Console) updateDocument() bool {
	id, ok := c.promptUint("Document id")
	if !ok {
		return false
	}
	title, ok := c.prompt("Title")
	if !ok {
		return false
	}
	docType, ok := c.pickDocumentType()
	if !ok {
		return false
	}
	content, ok := c.prompt("Content")
	if !ok {
		return false
	}

	doc, err := c.documents.UpdateDocument(id, title, docType, content)
	if err != nil {
		c.reportError(err)
		return true
	}
	c.printf("Updated document %s\n", doc.Title)
	return true
}

func (c *Console) printDocuments(records []database.Document) {
	if len(records) == 0 {
		c.printf("No documents found\n")
		return
	}
	for _, d := range records {
		c.printf("[%d] case %d | %s | %s | %s\n", d.ID, d.CaseID, d.Title, d.Type, d.ContentType)
	}
}
