package server

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/Rana718/arcadia/internal/dataset"
	"github.com/Rana718/arcadia/internal/ingest"
	"github.com/Rana718/arcadia/internal/metrics"
)

func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (s *Server) handleListDatasets(c *fiber.Ctx) error {
	b, err := s.loader.Load(c.UserContext())
	if err != nil {
		return err
	}

	counts := b.RowCounts()
	datasets := make([]DatasetInfo, 0, len(counts))
	for _, name := range b.Names() {
		datasets = append(datasets, DatasetInfo{Name: name, Rows: counts[name]})
	}

	return jsonData(c, fiber.Map{
		"run_id":       b.RunID,
		"source":       b.Source,
		"reason":       b.Reason,
		"generated_at": b.GeneratedAt,
		"datasets":     datasets,
	})
}

// handleGetDataset serves one table. ?supplier= keeps that supplier's rows, ?limit= caps the row count.
func (s *Server) handleGetDataset(c *fiber.Ctx) error {
	b, err := s.loader.Load(c.UserContext())
	if err != nil {
		return err
	}

	name := c.Params("name")
	table, err := b.Table(name)
	if err != nil {
		if errors.Is(err, dataset.ErrUnknownDataset) {
			return jsonError(c, fiber.StatusNotFound, err.Error())
		}
		return err
	}

	if supplier := c.Query("supplier"); supplier != "" {
		if missing := table.HasColumns("supplier"); len(missing) > 0 {
			return jsonError(c, fiber.StatusBadRequest, fmt.Sprintf("dataset %s has no supplier column", name))
		}
		table = table.Filter(func(r dataset.Row) bool { return r["supplier"] == supplier })
	}

	limit := c.QueryInt("limit", 0)
	if limit < 0 {
		return jsonError(c, fiber.StatusBadRequest, "limit cannot be negative")
	}
	if limit > 0 && table.Len() > limit {
		table = &dataset.Table{Name: table.Name, Columns: table.Columns, Rows: table.Rows[:limit]}
	}

	return jsonData(c, table)
}

func (s *Server) handleRefresh(c *fiber.Ctx) error {
	if err := s.loader.Invalidate(c.UserContext()); err != nil {
		s.log.Warn("cache invalidation failed", zap.Error(err))
	}
	return s.handleListDatasets(c)
}

func (s *Server) handleImprovements(c *fiber.Ctx) error {
	table := s.loader.Generator().ImprovementTable()
	if supplier := c.Query("supplier"); supplier != "" {
		table = table.Filter(func(r dataset.Row) bool { return r["supplier"] == supplier })
	}
	return jsonData(c, table)
}

// handleTimeline builds a fresh timeline per request; an empty supplier picks one at random.
func (s *Server) handleTimeline(c *fiber.Ctx) error {
	return jsonData(c, s.loader.Generator().TimelineTable(c.Query("supplier")))
}

func (s *Server) handleTemplate(c *fiber.Ctx) error {
	dt, err := ingest.ParseDataType(c.Query("type"))
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var buf bytes.Buffer
	if err := ingest.WriteTemplate(&buf, dt); err != nil {
		return err
	}

	c.Attachment(dt.Table() + "_template.csv")
	return c.Send(buf.Bytes())
}

func (s *Server) handleUpload(c *fiber.Ctx) error {
	dt, err := ingest.ParseDataType(c.FormValue("type"))
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, err.Error())
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "missing upload field \"file\"")
	}
	f, err := fh.Open()
	if err != nil {
		return err
	}
	defer f.Close()

	res := ingest.Process(fh.Filename, f, dt)
	metrics.ObserveUpload(dt.String(), res.Success)
	s.log.Info("upload processed",
		zap.String("file", fh.Filename),
		zap.String("data_type", dt.String()),
		zap.Bool("success", res.Success),
		zap.Int("rows", res.RowsProcessed))

	if !res.Success {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(res)
	}
	return c.JSON(res)
}
