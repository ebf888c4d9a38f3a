package importer

import (
	"errors"
	"fmt"
	"log"

	"opticat/internal/codegen"
	"opticat/internal/config"
	"opticat/internal/model"
	"opticat/internal/reader"
	"opticat/internal/refcache"
	"opticat/internal/store"
	"opticat/internal/validator"
)

var (
	ErrNotInUpload  = errors.New("session is not in upload state")
	ErrNotInPreview = errors.New("session is not in preview state")

	// ErrValidationFailed 提交前复检未通过
	ErrValidationFailed = errors.New("validation failed, cannot commit")

	// ErrImportFailedCompletely 所有批次全部失败
	ErrImportFailedCompletely = errors.New("import failed completely, no products were created")
)

// maxMessageLen 单条批次错误信息的截断长度
const maxMessageLen = 500

// Store 流水线依赖的记录存储
type Store interface {
	ListReference(kind refcache.Kind) ([]refcache.Entry, error)
	CreateReference(kind refcache.Kind, code, name string) (int64, error)
	ExistingNames(names []string) (map[string]bool, error)
	CodesByPrefix(prefix string) ([]string, error)
	InsertProductsBatch(savepoint string, products []*model.Product) error
	InsertImportLog(entry store.ImportLog) error
}

// Orchestrator 导入流水线编排：解析、校验、预览、分批提交
type Orchestrator struct {
	store Store
	cfg   config.ImportConfig
}

// NewOrchestrator 创建编排器
func NewOrchestrator(st Store, cfg config.ImportConfig) *Orchestrator {
	return &Orchestrator{store: st, cfg: cfg}
}

// Parse 解析上传的表格并校验，会话进入 preview 状态，不写库
func (o *Orchestrator) Parse(sess *Session) error {
	if sess.State != StateUpload {
		return ErrNotInUpload
	}

	result, err := reader.Parse(sess.FileData, sess.Filename, o.readerOptions())
	if err != nil {
		return err
	}

	cache, err := refcache.Load(o.store)
	if err != nil {
		return fmt.Errorf("failed to load reference data: %w", err)
	}

	outcome, err := validator.ValidateAll(cache, o.store, result.Rows, result.Kind)
	if err != nil {
		return fmt.Errorf("failed to validate rows: %w", err)
	}

	sess.Kind = result.Kind
	sess.Headers = result.Headers
	sess.Rows = result.Rows
	sess.Outcome = outcome
	sess.Preview = o.buildPreview(cache, result.Rows, result.Kind, outcome)
	sess.State = StatePreview

	log.Printf("parsed %s: kind=%s rows=%d errors=%d warnings=%d",
		sess.Filename, result.Kind, len(result.Rows), len(outcome.Errors), len(outcome.Warnings))
	return nil
}

// Commit 提交会话：用新缓存复检后按批次写入，单批失败回滚该批并继续
func (o *Orchestrator) Commit(sess *Session) (*Report, error) {
	if sess.State != StatePreview {
		return nil, ErrNotInPreview
	}

	// 参照数据可能在预览期间变化，提交前必须用新缓存复检
	cache, err := refcache.Load(o.store)
	if err != nil {
		return nil, fmt.Errorf("failed to load reference data: %w", err)
	}
	outcome, err := validator.ValidateAll(cache, o.store, sess.Rows, sess.Kind)
	if err != nil {
		return nil, fmt.Errorf("failed to validate rows: %w", err)
	}
	sess.Outcome = outcome
	if !outcome.Valid() {
		return nil, ErrValidationFailed
	}

	alloc := o.allocator(cache)
	batchSize := o.batchSize()
	report := &Report{}

	for start := 0; start < len(sess.Rows); start += batchSize {
		end := start + batchSize
		if end > len(sess.Rows) {
			end = len(sess.Rows)
		}
		batch := sess.Rows[start:end]
		batchNum := start/batchSize + 1

		if err := o.commitBatch(cache, alloc, sess, batch, batchNum); err != nil {
			if errors.Is(err, errAllocation) {
				// 编码分配失败说明存储不可用，整个提交中止
				return nil, err
			}
			report.ErrorCount += len(batch)
			report.Messages = append(report.Messages, truncate(fmt.Sprintf("Batch %d failed: %v", batchNum, err), maxMessageLen))
			log.Printf("batch %d of %s failed: %v", batchNum, sess.Filename, err)
			continue
		}
		report.SuccessCount += len(batch)
	}

	if report.SuccessCount == 0 && report.ErrorCount > 0 {
		o.writeLog(sess, report)
		return report, fmt.Errorf("%w: %v", ErrImportFailedCompletely, report.Messages)
	}

	sess.SuccessCount = report.SuccessCount
	sess.ErrorCount = report.ErrorCount
	sess.Messages = report.Messages
	sess.State = StateDone
	o.writeLog(sess, report)

	log.Printf("import %s done: success=%d errors=%d", sess.Filename, report.SuccessCount, report.ErrorCount)
	return report, nil
}

// Reset 从 preview 回到 upload，以便重新解析同一文件
func (o *Orchestrator) Reset(sess *Session) error {
	if sess.State != StatePreview {
		return ErrNotInPreview
	}
	sess.Reset()
	return nil
}

// errAllocation 标记编码分配阶段的存储错误，提交循环据此整体中止
var errAllocation = errors.New("code allocation failed")

func (o *Orchestrator) commitBatch(cache *refcache.Cache, alloc *codegen.Allocator, sess *Session, batch []reader.Row, batchNum int) error {
	reqs := make([]codegen.Request, len(batch))
	for i, row := range batch {
		reqs[i] = o.codeRequest(cache, row, sess.Kind)
	}
	codes, err := alloc.AllocateBatch(reqs)
	if err != nil {
		return fmt.Errorf("%w: %v", errAllocation, err)
	}

	products := make([]*model.Product, len(batch))
	for i, row := range batch {
		p, err := buildProduct(cache, row, sess.Kind, sess.Filename)
		if err != nil {
			return fmt.Errorf("failed to build product for row %d: %w", row.SheetRow, err)
		}
		p.Code = codes[i]
		products[i] = p
	}

	name := fmt.Sprintf("import_batch_%d", batchNum)
	if err := o.store.InsertProductsBatch(name, products); err != nil {
		return err
	}
	return nil
}

// buildPreview 生成预览行，试算编码与提交时同一算法但不保留
func (o *Orchestrator) buildPreview(cache *refcache.Cache, rows []reader.Row, kind model.ProductKind, outcome *validator.Outcome) []PreviewRow {
	reqs := make([]codegen.Request, len(rows))
	for i, row := range rows {
		reqs[i] = o.codeRequest(cache, row, kind)
	}
	codes, err := o.allocator(cache).AllocateBatch(reqs)
	if err != nil {
		// 预览阶段编码失败不致命，编码列留空
		log.Printf("preview code allocation failed: %v", err)
		codes = make([]string, len(rows))
	}

	rowErrors := make(map[int]string)
	for _, issue := range outcome.Errors {
		if issue.Row == nil {
			continue
		}
		if _, ok := rowErrors[*issue.Row]; !ok {
			rowErrors[*issue.Row] = issue.Message
		}
	}

	preview := make([]PreviewRow, len(rows))
	for i, row := range rows {
		pr := PreviewRow{
			RowNumber:      row.SheetRow,
			Code:           codes[i],
			FullName:       row.Get("FullName"),
			EngName:        row.Get("EngName"),
			TradeName:      row.Get("TradeName"),
			Group:          row.Get("Group"),
			Brand:          row.Get("TradeMark"),
			RetailPrice:    parseFloat(row.Get("Retail_Price")),
			WholesalePrice: parseFloat(row.Get("Wholesale_Price")),
			CostPrice:      parseFloat(row.Get("Cost_Price")),
		}
		switch kind {
		case model.KindLens:
			pr.Index = row.Get("Index")
			pr.Design1 = row.Get("Design1")
			pr.Material = row.Get("Material")
		case model.KindOptical:
			pr.Sku = row.Get("Sku")
			pr.Model = row.Get("Model")
			pr.FrameType = row.Get("Frame_Type")
		}
		if msg, ok := rowErrors[row.SheetRow]; ok {
			pr.HasError = true
			pr.ErrorMessage = msg
		}
		preview[i] = pr
	}
	return preview
}

// codeRequest 把行内容换算为编码分配请求，缺失的参照留零值
func (o *Orchestrator) codeRequest(cache *refcache.Cache, row reader.Row, kind model.ProductKind) codegen.Request {
	var req codegen.Request
	if id, ok := cache.Lookup(refcache.KindGroup, row.Get("Group")); ok {
		req.GroupID = id
	}
	if id, ok := cache.Lookup(refcache.KindBrand, row.Get("TradeMark")); ok {
		req.BrandID = id
	}
	if kind == model.KindLens {
		if id, ok := cache.Lookup(refcache.KindLensIndex, row.Get("Index")); ok {
			req.LensIndexID = id
		}
	}
	return req
}

func (o *Orchestrator) allocator(cache *refcache.Cache) *codegen.Allocator {
	return codegen.NewAllocator(o.store, func(id int64) (string, bool) {
		return cache.Code(refcache.KindLensIndex, id)
	})
}

func (o *Orchestrator) batchSize() int {
	if o.cfg.BatchSize > 0 {
		return o.cfg.BatchSize
	}
	return 100
}

func (o *Orchestrator) readerOptions() reader.Options {
	opts := reader.DefaultOptions()
	if o.cfg.HeaderRow > 0 {
		opts.HeaderRow = o.cfg.HeaderRow
	}
	if o.cfg.DataStartRow > 0 {
		opts.DataStartRow = o.cfg.DataStartRow
	}
	if o.cfg.MaxRows > 0 {
		opts.MaxRows = o.cfg.MaxRows
	}
	if o.cfg.MaxEmptyRows > 0 {
		opts.MaxEmptyRows = o.cfg.MaxEmptyRows
	}
	return opts
}

func (o *Orchestrator) writeLog(sess *Session, report *Report) {
	entry := store.ImportLog{
		SessionID:    sess.ID,
		Filename:     sess.Filename,
		Kind:         string(sess.Kind),
		SuccessCount: report.SuccessCount,
		ErrorCount:   report.ErrorCount,
		Messages:     report.Messages,
	}
	if err := o.store.InsertImportLog(entry); err != nil {
		log.Printf("failed to write import log for %s: %v", sess.ID, err)
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
