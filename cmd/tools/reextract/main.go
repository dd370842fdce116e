package main

import (
	"context"
	"flag"
	"log"
	"strings"

	"resume-extract/internal/config"
	"resume-extract/internal/nlp"
	"resume-extract/internal/resume"
	"resume-extract/internal/retrieval"
	"resume-extract/internal/storage"
)

// Re-runs extraction over stored resumes and refreshes their derived columns
// and entity rows. Useful after the skill vocabulary or the NLP tier changes.
func main() {
	var dryRun bool
	var limit int
	flag.BoolVar(&dryRun, "dry-run", true, "If true, do not persist updates; just print changes")
	flag.IntVar(&limit, "limit", 200, "Max number of resumes to process in one run")
	flag.Parse()

	cfg := config.LoadConfig()
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	log.Printf("Connecting to DB...")
	db, err := storage.NewDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to db: %v", err)
	}
	defer db.Close()

	engine := nlp.Acquire(cfg.NLPProvider, cfg.NLPAPIKey, cfg.NLPModel, cfg.NLPLightModel)

	var answerer resume.Answerer
	if ret := retrieval.Acquire(cfg.OpenAIAPIKey); ret != nil {
		answerer = ret
	}

	extractor := resume.NewExtractor(engine, answerer)

	ctx := context.Background()

	resumes, err := db.ListResumes(ctx, limit)
	if err != nil {
		log.Fatalf("query failed: %v", err)
	}

	log.Printf("Found %d resumes to re-extract (limit %d)", len(resumes), limit)

	for _, stored := range resumes {
		record := extractor.ParseResume(ctx, stored.RawText)
		if record == nil {
			log.Printf("Resume %d has no raw text — skipping", stored.ID)
			continue
		}

		log.Printf("Resume %d -> %d skills, %d education entries, email=%q",
			stored.ID, len(record.Skills), len(record.Education), record.Contact.Email)

		if dryRun {
			log.Printf("[dry-run] Would update resume %d: skills=%s",
				stored.ID, strings.Join(record.Skills, ","))
			continue
		}

		if err := db.DeleteResumeEntities(ctx, stored.ID); err != nil {
			log.Printf("failed to clear entities for resume %d: %v", stored.ID, err)
			continue
		}
		for _, skill := range record.Skills {
			_ = db.SaveResumeEntity(ctx, stored.ID, "skill", skill)
		}
		for _, edu := range record.Education {
			_ = db.SaveResumeEntity(ctx, stored.ID, "education", edu)
		}

		upd := `UPDATE resumes SET email = $1, phone = $2, skills = $3, education = $4 WHERE id = $5`
		if _, err := db.GetConnection().ExecContext(ctx, upd,
			record.Contact.Email, record.Contact.Phone,
			strings.Join(record.Skills, ","), strings.Join(record.Education, ","),
			stored.ID); err != nil {
			log.Printf("failed to update resume %d: %v", stored.ID, err)
			continue
		}
	}

	log.Printf("Re-extraction run complete")
}
