// Package classify determines which financial statement type a document
// contains. Detection runs a fixed pipeline of strategies from cheapest to
// most expensive; the first strategy that produces a confident answer wins,
// and the keyword fallback always produces one.
package classify

import (
	"context"
	"regexp"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/dealscope/dealscope-engine/pkg/llm"
	"github.com/dealscope/dealscope-engine/pkg/models"
	"github.com/dealscope/dealscope-engine/pkg/prompts"
)

const (
	// pdfScanLimit bounds how much of a PDF's text is scanned for title
	// patterns; statement titles appear on the first page.
	pdfScanLimit = 1000

	// remoteContentLimit bounds how much content is sent to the remote
	// classifier. Statement type is evident well before this point.
	remoteContentLimit = 5000

	// remoteMaxTokens caps the remote classifier's answer, which is a
	// single type token.
	remoteMaxTokens = 50
)

// Input carries everything detection can use about a document.
type Input struct {
	Content       string
	Filename      string
	FileExtension string
}

// strategy attempts one detection technique. ok is false when the technique
// does not apply or cannot reach a confident answer.
type strategy struct {
	name string
	fn   func(ctx context.Context, in Input) (models.StatementType, bool)
}

// Classifier detects statement types. The remote strategy is optional: with a
// nil completion client, detection is purely local.
type Classifier struct {
	completion llm.CompletionClient
	logger     *zap.Logger
	strategies []strategy
}

func NewClassifier(completion llm.CompletionClient, logger *zap.Logger) *Classifier {
	c := &Classifier{
		completion: completion,
		logger:     logger.Named("classify"),
	}
	c.strategies = []strategy{
		{name: "filename", fn: c.fromFilename},
		{name: "headers", fn: c.fromHeaders},
		{name: "pdf_patterns", fn: c.fromPDFPatterns},
		{name: "remote", fn: c.fromRemote},
	}
	return c
}

// Classify returns the detected statement type. It never fails: when no
// strategy is confident, the keyword fallback applies its default.
func (c *Classifier) Classify(ctx context.Context, in Input) models.StatementType {
	for _, s := range c.strategies {
		if t, ok := s.fn(ctx, in); ok {
			c.logger.Info("document type detected",
				zap.String("strategy", s.name),
				zap.String("type", string(t)))
			return t
		}
	}
	t := c.fromKeywords(in.Content)
	c.logger.Info("document type detected",
		zap.String("strategy", "keywords"),
		zap.String("type", string(t)))
	return t
}

// filenameIndicators is checked in order so behavior is deterministic when a
// name matches several entries.
var filenameIndicators = []struct {
	indicator string
	t         models.StatementType
}{
	{"income_statement", models.TypeIncomeStatement},
	{"income statement", models.TypeIncomeStatement},
	{"profit_and_loss", models.TypeIncomeStatement},
	{"profit and loss", models.TypeIncomeStatement},
	{"p&l", models.TypeIncomeStatement},
	{"balance_sheet", models.TypeBalanceSheet},
	{"balance sheet", models.TypeBalanceSheet},
	{"cash_flow", models.TypeCashFlowStatement},
	{"cash flow", models.TypeCashFlowStatement},
	{"cashflow", models.TypeCashFlowStatement},
	{"shareholders_equity", models.TypeShareholdersEquity},
	{"shareholders equity", models.TypeShareholdersEquity},
	{"stockholders_equity", models.TypeShareholdersEquity},
	{"stockholders equity", models.TypeShareholdersEquity},
	{"financial_ratios", models.TypeFinancialRatios},
	{"financial ratios", models.TypeFinancialRatios},
	{"fdd", models.TypeFDD},
	{"franchise_disclosure", models.TypeFDD},
}

func (c *Classifier) fromFilename(_ context.Context, in Input) (models.StatementType, bool) {
	if in.Filename == "" {
		return "", false
	}
	lower := strings.ToLower(in.Filename)
	for _, fi := range filenameIndicators {
		if strings.Contains(lower, fi.indicator) {
			return fi.t, true
		}
	}
	return "", false
}

// headerCombos are column combinations that strongly indicate a type when
// they all appear on the first row of a structured file.
var headerCombos = []struct {
	t      models.StatementType
	combos [][]string
}{
	{models.TypeIncomeStatement, [][]string{
		{"revenue", "cost of goods sold", "gross profit"},
		{"revenue", "expenses", "net income"},
		{"sales", "cost of sales", "gross profit"},
	}},
	{models.TypeBalanceSheet, [][]string{
		{"assets", "liabilities", "equity"},
		{"current assets", "non-current assets", "liabilities"},
		{"assets", "liabilities", "shareholder's equity"},
	}},
	{models.TypeCashFlowStatement, [][]string{
		{"operating activities", "investing activities", "financing activities"},
		{"cash flow from operations", "cash flow from investing", "cash flow from financing"},
		{"operating cash flow", "investing cash flow", "financing cash flow"},
	}},
	{models.TypeShareholdersEquity, [][]string{
		{"common stock", "retained earnings", "treasury stock"},
		{"share capital", "retained earnings", "reserves"},
		{"stockholder's equity", "accumulated earnings", "other comprehensive income"},
	}},
	{models.TypeFinancialRatios, [][]string{
		{"ratio", "value", "description"},
		{"financial ratio", "calculation", "result"},
		{"metric", "value", "benchmark"},
	}},
}

func (c *Classifier) fromHeaders(_ context.Context, in Input) (models.StatementType, bool) {
	switch in.FileExtension {
	case "csv", "xlsx", "xls":
	default:
		return "", false
	}
	firstLine, _, _ := strings.Cut(in.Content, "\n")
	cells := strings.Split(firstLine, ",")
	for i, cell := range cells {
		cells[i] = strings.TrimSpace(cell)
	}
	headerStr := strings.ToLower(strings.Join(cells, " "))

	for _, hc := range headerCombos {
		for _, combo := range hc.combos {
			all := true
			for _, term := range combo {
				if !strings.Contains(headerStr, term) {
					all = false
					break
				}
			}
			if all {
				return hc.t, true
			}
		}
	}
	return "", false
}

// pdfPatterns match statement titles on the first page of a PDF.
var pdfPatterns = []struct {
	t        models.StatementType
	patterns []*regexp.Regexp
}{
	{models.TypeIncomeStatement, []*regexp.Regexp{
		regexp.MustCompile(`(?i)income statement`),
		regexp.MustCompile(`(?i)profit (?:and|&) loss`),
		regexp.MustCompile(`(?i)statement of (?:income|earnings)`),
	}},
	{models.TypeBalanceSheet, []*regexp.Regexp{
		regexp.MustCompile(`(?i)balance sheet`),
		regexp.MustCompile(`(?i)statement of (?:financial position|assets and liabilities)`),
	}},
	{models.TypeCashFlowStatement, []*regexp.Regexp{
		regexp.MustCompile(`(?i)cash flow`),
		regexp.MustCompile(`(?i)statement of cash flows`),
		regexp.MustCompile(`(?i)cash flow statement`),
	}},
	{models.TypeFDD, []*regexp.Regexp{
		regexp.MustCompile(`(?i)franchise disclosure document`),
		regexp.MustCompile(`(?i)fdd\s+item`),
		regexp.MustCompile(`(?i)franchise disclosure`),
	}},
}

func (c *Classifier) fromPDFPatterns(_ context.Context, in Input) (models.StatementType, bool) {
	if in.FileExtension != "pdf" {
		return "", false
	}
	head := in.Content
	if len(head) > pdfScanLimit {
		head = head[:pdfScanLimit]
	}
	for _, pp := range pdfPatterns {
		for _, re := range pp.patterns {
			if re.MatchString(head) {
				return pp.t, true
			}
		}
	}
	return "", false
}

// fromRemote asks the completion model to name the type. Any failure, or an
// answer outside the known type tokens, degrades silently to the keyword
// fallback.
func (c *Classifier) fromRemote(ctx context.Context, in Input) (models.StatementType, bool) {
	if c.completion == nil {
		return "", false
	}
	content := in.Content
	if len(content) > remoteContentLimit {
		content = content[:remoteContentLimit]
	}
	answer, err := c.completion.Complete(ctx, llm.CompletionRequest{
		System:      prompts.ClassificationSystemMessage,
		Prompt:      content,
		Temperature: llm.DefaultTemperature,
		MaxTokens:   remoteMaxTokens,
	})
	if err != nil {
		c.logger.Warn("remote classification failed, falling back", zap.Error(err))
		return "", false
	}
	t, err := models.ParseStatementType(answer)
	if err != nil {
		c.logger.Warn("remote classifier returned unknown type",
			zap.String("answer", strings.TrimSpace(answer)))
		return "", false
	}
	return t, true
}

// typeScore is one type's keyword tally.
type typeScore struct {
	t       models.StatementType
	exact   int
	partial int
	total   float64
	ratio   float64
}

// fromKeywords scores the content against every type's keyword list and
// returns the best-scoring type if it clears the confidence threshold,
// otherwise the income statement default.
func (c *Classifier) fromKeywords(content string) models.StatementType {
	contentLower := strings.ToLower(content)

	scores := make([]typeScore, 0, len(models.AllStatementTypes))
	for _, t := range models.AllStatementTypes {
		words := keywords[t]
		s := typeScore{t: t}
		for _, w := range words {
			w = strings.ToLower(w)
			if strings.Contains(contentLower, w) {
				s.exact++
			}
			if hasPartialMatch(contentLower, w) {
				s.partial++
			}
		}
		s.total = float64(s.exact) + float64(s.partial)*0.5
		s.ratio = s.total / float64(len(words))
		scores = append(scores, s)
	}

	// Close scores are ranked by match ratio so that types with short
	// keyword lists are not drowned out by long ones.
	sort.SliceStable(scores, func(i, j int) bool {
		a, b := scores[i], scores[j]
		if diff := a.total - b.total; diff > 3 || diff < -3 {
			return a.total > b.total
		}
		return a.ratio > b.ratio
	})

	best := scores[0]
	if best.exact >= 2 ||
		(best.exact >= 1 && best.partial >= 2) ||
		best.partial >= 4 {
		return best.t
	}

	c.logger.Warn("no confident keyword match, defaulting",
		zap.String("type", string(models.TypeIncomeStatement)),
		zap.Int("best_exact", best.exact),
		zap.Int("best_partial", best.partial))
	return models.TypeIncomeStatement
}

var partialSplitter = regexp.MustCompile(`[\s\-(),/]+`)

// hasPartialMatch reports whether any meaningful token of the keyword appears
// in the content. Tokens of three characters or fewer are too noisy to count.
func hasPartialMatch(contentLower, keyword string) bool {
	for _, part := range partialSplitter.Split(keyword, -1) {
		if len(part) > 3 && strings.Contains(contentLower, part) {
			return true
		}
	}
	return false
}
