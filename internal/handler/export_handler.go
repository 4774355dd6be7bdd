package handler

import (
	"encoding/csv"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/yourusername/interviewprep-api/internal/domain/entity"
	"github.com/yourusername/interviewprep-api/internal/domain/repository"
)

// ExportHandler выгружает банк вопросов в файл для офлайн-ревизии
type ExportHandler struct {
	questionRepo repository.QuestionRepository
}

// NewExportHandler создает новый обработчик экспорта
func NewExportHandler(questionRepo repository.QuestionRepository) *ExportHandler {
	return &ExportHandler{questionRepo: questionRepo}
}

// ExportQuestions выгружает все вопросы в xlsx (по умолчанию) или csv.
// GET /admin/questions/export?format=xlsx|csv
func (h *ExportHandler) ExportQuestions(c *gin.Context) {
	questions, err := h.questionRepo.List()
	if err != nil {
		log.Printf("[ExportHandler] Failed to load questions: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	filename := fmt.Sprintf("questions_%s", time.Now().Format("2006-01-02"))

	switch c.DefaultQuery("format", "xlsx") {
	case "csv":
		h.exportCSV(c, questions, filename)
	case "xlsx":
		h.exportXLSX(c, questions, filename)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported format, use csv or xlsx"})
	}
}

// exportCSV выгружает вопросы в CSV
func (h *ExportHandler) exportCSV(c *gin.Context, questions []entity.Question, filename string) {
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.csv\"", filename))

	w := csv.NewWriter(c.Writer)
	defer w.Flush()

	header := []string{"ID", "Question", "Category", "Description", "Constraints", "Hint", "Solution", "Code Solution", "Trivia", "Shown"}
	if err := w.Write(header); err != nil {
		log.Printf("[ExportHandler] Ошибка записи заголовков CSV: %v", err)
		return
	}

	for _, q := range questions {
		row := []string{
			strconv.FormatUint(uint64(q.ID), 10),
			q.Question,
			q.Category,
			q.Description,
			q.Constraints,
			q.Hint,
			q.Solution,
			q.CodeSolution,
			q.Trivia,
			strconv.FormatBool(q.Shown),
		}
		if err := w.Write(row); err != nil {
			log.Printf("[ExportHandler] Ошибка записи строки CSV: %v", err)
			return
		}
	}
}

// exportXLSX выгружает вопросы в Excel с использованием StreamWriter
func (h *ExportHandler) exportXLSX(c *gin.Context, questions []entity.Question, filename string) {
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.xlsx\"", filename))

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Questions"
	f.SetSheetName("Sheet1", sheetName)

	sw, err := f.NewStreamWriter(sheetName)
	if err != nil {
		log.Printf("[ExportHandler] Ошибка создания StreamWriter: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel file"})
		return
	}

	headers := []interface{}{"ID", "Question", "Category", "Description", "Constraints", "Hint", "Solution", "Code Solution", "Trivia", "Shown"}
	if err := sw.SetRow("A1", headers); err != nil {
		log.Printf("[ExportHandler] Ошибка записи заголовков: %v", err)
	}

	for i, q := range questions {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []interface{}{
			q.ID,
			q.Question,
			q.Category,
			q.Description,
			q.Constraints,
			q.Hint,
			q.Solution,
			q.CodeSolution,
			q.Trivia,
			q.Shown,
		}
		if err := sw.SetRow(cell, row); err != nil {
			log.Printf("[ExportHandler] Ошибка записи строки %d: %v", i+2, err)
		}
	}

	if err := sw.Flush(); err != nil {
		log.Printf("[ExportHandler] Ошибка завершения StreamWriter: %v", err)
		return
	}

	if err := f.Write(c.Writer); err != nil {
		log.Printf("[ExportHandler] Ошибка отправки файла: %v", err)
	}
}
