package ui

import (
	stderrors "errors"
	"fmt"
	"html/template"
	"log"
	"net/http"

	"showcase/adapters/chart"
	"showcase/adapters/tabular"
	"showcase/domain/calculator"
	"showcase/domain/page"
	"showcase/domain/series"
	"showcase/internal/errors"

	"github.com/gin-gonic/gin"
)

const multipartOverhead = 1 << 20

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// handleNavigate turns the sidebar selection into a redirect to the page
func (s *Server) handleNavigate(c *gin.Context) {
	p, err := page.Parse(c.Query("page"))
	if err != nil {
		c.JSON(errors.HTTPStatus(err), gin.H{"error": errors.UserMessage(err), "code": errors.GetCode(err)})
		return
	}
	c.Redirect(http.StatusSeeOther, p.Path())
}

func (s *Server) handleHome(c *gin.Context) {
	s.renderTemplate(c, http.StatusOK, "home.html", s.pageData(page.Home, gin.H{
		"Intro": s.intro,
	}))
}

func (s *Server) handleVisualization(c *gin.Context) {
	data := gin.H{"Styles": series.Styles()}

	style, err := series.ParseStyle(c.Query("style"))
	if err != nil {
		data["Error"] = errors.UserMessage(err)
		data["Selected"] = series.Line
		s.renderTemplate(c, errors.HTTPStatus(err), "visualization.html", s.pageData(page.DataVisualization, data))
		return
	}
	data["Selected"] = style

	figure, err := s.service.Chart(c.Request.Context(), style)
	if err == nil {
		var svg string
		svg, err = figure.RenderString(chart.SVG)
		data["Chart"] = template.HTML(svg)
	}
	if err != nil {
		log.Printf("[Server] chart failed: %v", err)
		data["Error"] = errors.UserMessage(err)
		s.renderTemplate(c, errors.HTTPStatus(err), "visualization.html", s.pageData(page.DataVisualization, data))
		return
	}

	s.renderTemplate(c, http.StatusOK, "visualization.html", s.pageData(page.DataVisualization, data))
}

func (s *Server) handleTextForm(c *gin.Context) {
	s.renderTemplate(c, http.StatusOK, "text.html", s.pageData(page.TextAnalysis, gin.H{"Text": ""}))
}

func (s *Server) handleTextAnalysis(c *gin.Context) {
	text := c.PostForm("text")
	data := gin.H{"Text": text}

	report, ok := s.service.AnalyzeText(c.Request.Context(), text)
	if ok {
		data["Report"] = report
		svg, err := chart.NewWordChart(report.TopWords).RenderString(chart.SVG)
		if err != nil {
			log.Printf("[Server] word chart failed: %v", err)
		} else {
			data["WordChart"] = template.HTML(svg)
		}
	}

	s.renderTemplate(c, http.StatusOK, "text.html", s.pageData(page.TextAnalysis, data))
}

func (s *Server) handleFileForm(c *gin.Context) {
	s.renderTemplate(c, http.StatusOK, "files.html", s.pageData(page.FileUpload, nil))
}

func (s *Server) handleFileUpload(c *gin.Context) {
	limit := s.service.Config().Upload.MaxBytes
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit+multipartOverhead)

	fail := func(err error) {
		s.renderTemplate(c, errors.HTTPStatus(err), "files.html", s.pageData(page.FileUpload, gin.H{
			"Error": errors.UserMessage(err),
		}))
	}

	header, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			fail(errors.PayloadTooLarge(limit))
			return
		}
		fail(errors.InvalidInput("Please choose a file to upload"))
		return
	}

	file, err := header.Open()
	if err != nil {
		fail(errors.Wrap(err, "failed to open upload"))
		return
	}
	defer file.Close()

	summary, err := s.service.AnalyzeFile(c.Request.Context(), header.Filename, file)
	if err != nil {
		log.Printf("[Server] upload %s rejected: %v", header.Filename, err)
		fail(err)
		return
	}

	s.renderTemplate(c, http.StatusOK, "files.html", s.pageData(page.FileUpload, gin.H{
		"FileName":   header.Filename,
		"Summary":    summary,
		"Preview":    previewRows(summary.Preview),
		"Describe":   describeView(summary.Describe),
		"NullCounts": summary.NullCounts,
	}))
}

func (s *Server) handleCalculatorForm(c *gin.Context) {
	s.renderTemplate(c, http.StatusOK, "calculator.html", s.pageData(page.Calculator, gin.H{
		"Operations": calculator.Operations(),
		"A":          "0.0",
		"B":          "0.0",
		"Selected":   calculator.Add,
	}))
}

func (s *Server) handleCalculate(c *gin.Context) {
	data := gin.H{
		"Operations": calculator.Operations(),
		"A":          c.PostForm("a"),
		"B":          c.PostForm("b"),
		"Selected":   calculator.Add,
	}
	fail := func(err error) {
		data["Error"] = errors.UserMessage(err)
		s.renderTemplate(c, errors.HTTPStatus(err), "calculator.html", s.pageData(page.Calculator, data))
	}

	op, err := calculator.ParseOperation(c.PostForm("operation"))
	if err != nil {
		fail(err)
		return
	}
	data["Selected"] = op

	a, err := calculator.ParseOperand(c.PostForm("a"))
	if err != nil {
		fail(err)
		return
	}
	b, err := calculator.ParseOperand(c.PostForm("b"))
	if err != nil {
		fail(err)
		return
	}

	result, err := s.service.Calculate(c.Request.Context(), a, b, op)
	if err != nil {
		fail(err)
		return
	}

	data["Result"] = result.Display()
	s.renderTemplate(c, http.StatusOK, "calculator.html", s.pageData(page.Calculator, data))
}

// describeTable lays the describe output out with one row per statistic
// and one column per table column
type describeTable struct {
	Columns []string
	Rows    []describeRow
}

type describeRow struct {
	Stat   string
	Values []string
}

func describeView(d tabular.Description) describeTable {
	var table describeTable
	if d.Kind == tabular.KindNumeric {
		stats := []string{"count", "mean", "std", "min", "25%", "50%", "75%", "max"}
		table.Rows = make([]describeRow, len(stats))
		for i, name := range stats {
			table.Rows[i].Stat = name
		}
		for _, col := range d.Numeric {
			table.Columns = append(table.Columns, col.Column)
			values := []*float64{col.Mean, col.Std, col.Min, col.Q25, col.Q50, col.Q75, col.Max}
			table.Rows[0].Values = append(table.Rows[0].Values, fmt.Sprintf("%d", col.Count))
			for i, v := range values {
				table.Rows[i+1].Values = append(table.Rows[i+1].Values, formatStat(v))
			}
		}
		return table
	}

	table.Rows = []describeRow{{Stat: "count"}, {Stat: "unique"}, {Stat: "top"}, {Stat: "freq"}}
	for _, col := range d.Text {
		table.Columns = append(table.Columns, col.Column)
		table.Rows[0].Values = append(table.Rows[0].Values, fmt.Sprintf("%d", col.Count))
		table.Rows[1].Values = append(table.Rows[1].Values, fmt.Sprintf("%d", col.Unique))
		top := col.Top
		if col.Count == 0 {
			top = "NaN"
		}
		table.Rows[2].Values = append(table.Rows[2].Values, top)
		table.Rows[3].Values = append(table.Rows[3].Values, fmt.Sprintf("%d", col.Freq))
	}
	return table
}

func formatStat(v *float64) string {
	if v == nil {
		return "NaN"
	}
	return fmt.Sprintf("%.6f", *v)
}

// previewRows renders cells as text, showing missing cells as NaN
func previewRows(t *tabular.Table) [][]string {
	rows := make([][]string, 0, t.NumRows())
	for _, row := range t.Rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			if cell.Missing {
				cells[i] = "NaN"
			} else {
				cells[i] = cell.Raw
			}
		}
		rows = append(rows, cells)
	}
	return rows
}
