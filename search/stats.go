package search

// Stats returns a lightweight introspection view of the built index.
func (e *Engine) Stats() (*StatsResponse, error) {
	snap, err := e.snapshot()
	if err != nil {
		return nil, err
	}

	return &StatsResponse{
		CorpusSize: len(snap.institutes),
		Entities: EntityCounts{
			Institutes: len(snap.institutes),
			Programmes: len(snap.programmes),
			Courses:    len(snap.courses),
		},
		Facets: snap.facets.Sizes(),
		TrieNodes: map[string]int{
			"institutes": snap.instituteTrie.NodeCount(),
			"programmes": snap.programmeTrie.NodeCount(),
			"courses":    snap.courseTrie.NodeCount(),
		},
		BuiltAt:       snap.builtAt,
		BuildDuration: snap.buildTime.String(),
	}, nil
}
