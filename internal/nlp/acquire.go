package nlp

import "log"

// Acquire selects an NLP engine in priority order: the full model first,
// then the lightweight model, then the blank no-op engine. Every tier
// failure falls through to the next, so acquisition never fails.
func Acquire(provider, apiKey, fullModel, lightModel string) Engine {
	if engine, err := NewLLMEngine(provider, apiKey, fullModel); err == nil {
		log.Printf("[NLP] Using full model: %s (%s)", fullModel, provider)
		return engine
	} else {
		log.Printf("[NLP] Full model unavailable: %v", err)
	}

	if engine, err := NewLLMEngine(provider, apiKey, lightModel); err == nil {
		log.Printf("[NLP] Using lightweight model: %s (%s)", lightModel, provider)
		return engine
	} else {
		log.Printf("[NLP] Lightweight model unavailable: %v", err)
	}

	log.Println("[NLP] No model available, entity extraction disabled")
	return Blank{}
}
