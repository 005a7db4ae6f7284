package handler

import (
	"time"

	"xerosync/internal/model"
	"xerosync/internal/service"
	"xerosync/internal/storage"
)

type journalDTO struct {
	JournalID      string               `json:"journal_id"`
	JournalDate    string               `json:"journal_date"`
	JournalNumber  string               `json:"journal_number"`
	Reference      string               `json:"reference"`
	CreatedDateUTC time.Time            `json:"created_date_utc"`
	SourceID       string               `json:"source_id,omitempty"`
	SourceType     string               `json:"source_type,omitempty"`
	LinesLoaded    bool                 `json:"lines_loaded"`
	Lines          []*model.JournalLine `json:"lines,omitempty"`
}

func newJournalDTO(j *model.Journal, lines []*model.JournalLine) journalDTO {
	return journalDTO{
		JournalID:      j.JournalID,
		JournalDate:    model.FormatDate(j.JournalDate),
		JournalNumber:  j.JournalNumber,
		Reference:      j.Reference,
		CreatedDateUTC: j.CreatedDateUTC,
		SourceID:       j.SourceID,
		SourceType:     j.SourceType,
		LinesLoaded:    j.LinesLoaded(),
		Lines:          lines,
	}
}

type journalListDTO struct {
	Items []journalDTO `json:"data"`
	Total int          `json:"total"`
}

func newJournalListDTO(res *service.JournalListResult) journalListDTO {
	items := make([]journalDTO, 0, len(res.Items))
	for _, j := range res.Items {
		items = append(items, newJournalDTO(j, nil))
	}
	return journalListDTO{Items: items, Total: res.Total}
}

type linesDTO struct {
	JournalID string               `json:"journal_id"`
	Lines     []*model.JournalLine `json:"lines"`
}

type syncDTO struct {
	Since   string `json:"since,omitempty"`
	Fetched int    `json:"fetched"`
	Saved   int    `json:"saved"`
}

type objectDTO struct {
	Key         string `json:"key"`
	Size        int64  `json:"size"`
	ContentType string `json:"content_type"`
	ETag        string `json:"etag,omitempty"`
}

func newObjectDTOs(infos []storage.ObjectInfo) []objectDTO {
	out := make([]objectDTO, 0, len(infos))
	for _, o := range infos {
		out = append(out, objectDTO{Key: o.Key, Size: o.Size, ContentType: o.ContentType, ETag: o.ETag})
	}
	return out
}

type linkDTO struct {
	URL string `json:"url"`
}
