package api

import (
	"resume-extract/internal/config"
	"resume-extract/internal/cvfile"
	"resume-extract/internal/nlp"
	"resume-extract/internal/resume"
	"resume-extract/internal/retrieval"
	"resume-extract/internal/storage"
)

type API struct {
	db        *storage.DB
	files     *cvfile.Store
	extractor *resume.Extractor
}

func NewAPI(db *storage.DB, cfg *config.Config) *API {
	// Acquire capabilities once; the extractor holds them for the process
	// lifetime. Both acquisitions degrade instead of failing.
	engine := nlp.Acquire(cfg.NLPProvider, cfg.NLPAPIKey, cfg.NLPModel, cfg.NLPLightModel)

	var answerer resume.Answerer
	if ret := retrieval.Acquire(cfg.OpenAIAPIKey); ret != nil {
		answerer = ret
	}

	return &API{
		db:        db,
		files:     cvfile.NewStore(cfg.UploadsDir),
		extractor: resume.NewExtractor(engine, answerer),
	}
}
