package search

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/campusgrid/campusgrid/core"
	"github.com/campusgrid/campusgrid/index"
)

// sampleCourseCount is how many courses a flattened programme record carries;
// the rest are represented by a remainder count.
const sampleCourseCount = 2

// snapshot is one complete, immutable build of the index. A new build
// replaces the whole snapshot; nothing in here is mutated after merge.
type snapshot struct {
	institutes map[core.ID]*core.Institute
	order      []core.ID
	slugToId   map[string]core.ID
	programmes []core.Programme
	courses    []core.Course

	instituteTrie *index.Trie
	programmeTrie *index.Trie
	courseTrie    *index.Trie
	facets        *index.Facets
	allIds        index.IDSet

	builtAt   time.Time
	buildTime time.Duration
}

func newSnapshot() *snapshot {
	return &snapshot{
		institutes:    make(map[core.ID]*core.Institute),
		slugToId:      make(map[string]core.ID),
		instituteTrie: index.NewTrie(),
		programmeTrie: index.NewTrie(),
		courseTrie:    index.NewTrie(),
		facets:        index.NewFacets(),
		allIds:        make(index.IDSet),
	}
}

type trieEntry struct {
	text string
	rec  index.Suggestion
}

type facetEntry struct {
	facet string
	value string
}

// materialized is the flattened output of one institute document, produced
// on a worker goroutine and merged into the snapshot on the build goroutine.
type materialized struct {
	institute  *core.Institute
	rawSlug    string
	programmes []core.Programme
	courses    []core.Course

	instituteEntries []trieEntry
	programmeEntries []trieEntry
	courseEntries    []trieEntry
	facetEntries     []facetEntry
}

func (m *materialized) addFacet(facet, value string) {
	m.facetEntries = append(m.facetEntries, facetEntry{facet: facet, value: value})
}

func (m *materialized) addKeywords(text string) {
	for _, kw := range ExtractKeywords(text) {
		m.addFacet(index.FacetKeyword, kw)
	}
}

// rebuildLocked performs the single bulk read and full materialization.
// Caller holds buildMu.
func (e *Engine) rebuildLocked(ctx context.Context) error {
	start := time.Now()

	docs, err := e.repo.GetAllInstitutes(ctx)
	if err != nil {
		return fmt.Errorf("loading catalog documents: %w", err)
	}

	// Fan materialization out across a pool, one task per document.
	// Workers only touch their own slot; all shared state is merged below.
	pool, err := ants.NewPool(e.poolSize)
	if err != nil {
		return fmt.Errorf("creating build pool: %w", err)
	}
	defer pool.Release()

	results := make([]*materialized, len(docs))
	var wg sync.WaitGroup
	for i, doc := range docs {
		wg.Add(1)
		task := func() {
			defer wg.Done()
			results[i] = materializeInstitute(doc)
		}
		if submitErr := pool.Submit(task); submitErr != nil {
			// Pool rejected the task; run it inline.
			task()
		}
	}
	wg.Wait()

	snap := newSnapshot()
	skipped := 0
	for _, m := range results {
		if m == nil {
			skipped++
			continue
		}
		snap.merge(m)
	}
	snap.builtAt = time.Now()
	snap.buildTime = time.Since(start)

	e.snap.Store(snap)
	e.logger.Info("catalog index built",
		"institutes", len(snap.institutes),
		"programmes", len(snap.programmes),
		"courses", len(snap.courses),
		"skipped", skipped,
		"took", snap.buildTime)
	return nil
}

// merge folds one materialized institute into the snapshot. Runs on the
// build goroutine only.
func (s *snapshot) merge(m *materialized) {
	inst := m.institute
	if _, dup := s.institutes[inst.Id]; dup {
		// Duplicate document ids: first one wins, matching slug semantics.
		return
	}
	s.institutes[inst.Id] = inst
	s.order = append(s.order, inst.Id)
	s.allIds[inst.Id] = struct{}{}

	// First writer wins on slug collisions; both the derived and the raw
	// upstream slug resolve to the institute.
	if _, taken := s.slugToId[inst.Slug]; !taken {
		s.slugToId[inst.Slug] = inst.Id
	}
	if m.rawSlug != "" {
		if _, taken := s.slugToId[m.rawSlug]; !taken {
			s.slugToId[m.rawSlug] = inst.Id
		}
	}

	s.programmes = append(s.programmes, m.programmes...)
	s.courses = append(s.courses, m.courses...)

	for _, entry := range m.instituteEntries {
		s.instituteTrie.Insert(entry.text, entry.rec)
	}
	for _, entry := range m.programmeEntries {
		s.programmeTrie.Insert(entry.text, entry.rec)
	}
	for _, entry := range m.courseEntries {
		s.courseTrie.Insert(entry.text, entry.rec)
	}
	for _, entry := range m.facetEntries {
		s.facets.Add(entry.facet, entry.value, inst.Id)
	}
}

// materializeInstitute flattens one raw document into records, trie entries
// and facet entries. Returns nil for documents that cannot be indexed.
func materializeInstitute(doc *core.RawInstitute) *materialized {
	if core.ValidateInstitute(doc) != nil {
		return nil
	}

	slug := core.Slugify(doc.Name)
	inst := &core.Institute{
		Id:          doc.Id,
		Slug:        slug,
		Name:        doc.Name,
		ShortName:   doc.ShortName,
		Logo:        doc.Logo,
		Type:        doc.Type,
		City:        doc.Location.City,
		State:       doc.Location.State,
		Established: doc.Established,
		Description: core.ExtractDescription(doc),
		Raw:         doc,
	}

	m := &materialized{
		institute: inst,
		rawSlug:   core.Slugify(doc.Slug),
	}

	instKey := strconv.FormatUint(uint64(doc.Id), 10)
	instSuggestion := index.Suggestion{
		Key:   instKey,
		Id:    doc.Id,
		Slug:  slug,
		Name:  doc.Name,
		Logo:  doc.Logo,
		City:  doc.Location.City,
		State: doc.Location.State,
	}
	m.instituteEntries = append(m.instituteEntries, trieEntry{text: doc.Name, rec: instSuggestion})
	if doc.ShortName != "" {
		m.instituteEntries = append(m.instituteEntries, trieEntry{text: doc.ShortName, rec: instSuggestion})
	}

	m.addFacet(index.FacetCity, doc.Location.City)
	m.addFacet(index.FacetState, doc.Location.State)
	m.addFacet(index.FacetType, doc.Type)
	m.addKeywords(doc.Name + " " + doc.Type)

	for pi := range doc.Programmes {
		p := &doc.Programmes[pi]
		if core.ValidateProgramme(p) != nil {
			continue
		}
		m.materializeProgramme(doc, inst, p, instKey)
	}

	return m
}

func (m *materialized) materializeProgramme(doc *core.RawInstitute, inst *core.Institute, p *core.RawProgramme, instKey string) {
	pslug := core.Slugify(p.Name)

	prog := core.Programme{
		InstituteId:      inst.Id,
		InstituteSlug:    inst.Slug,
		InstituteName:    inst.Name,
		InstituteLogo:    inst.Logo,
		Name:             p.Name,
		Slug:             pslug,
		EligibilityExams: p.EligibilityExams,
		PlacementRating:  p.PlacementRating,
		URL:              "/institutes/" + inst.Slug + "/programmes/" + pslug,
	}

	m.programmeEntries = append(m.programmeEntries, trieEntry{
		text: p.Name,
		rec: index.Suggestion{
			Key:   instKey + ":" + pslug,
			Id:    inst.Id,
			Slug:  pslug,
			Name:  p.Name,
			Logo:  inst.Logo,
			City:  inst.City,
			State: inst.State,
		},
	})

	m.addFacet(index.FacetProgramme, p.Name)
	m.addKeywords(p.Name)
	for _, exam := range p.EligibilityExams {
		m.addFacet(index.FacetExam, exam)
	}

	progSummary := core.ProgrammeSummary{
		Name:            p.Name,
		Slug:            pslug,
		PlacementRating: p.PlacementRating,
	}

	indexed := 0
	for ci := range p.Courses {
		c := &p.Courses[ci]
		if core.ValidateCourse(c) != nil {
			continue
		}

		courseName := c.DisplayName
		if courseName == "" {
			courseName = c.Degree
		}
		cslug := core.Slugify(courseName)
		level := strings.ToUpper(strings.TrimSpace(c.Level))

		exams := c.EligibilityExams
		if len(exams) == 0 {
			exams = p.EligibilityExams
		}

		course := core.Course{
			InstituteId:           inst.Id,
			InstituteSlug:         inst.Slug,
			InstituteName:         inst.Name,
			ProgrammeName:         p.Name,
			ProgrammeSlug:         pslug,
			Degree:                c.Degree,
			DisplayName:           c.DisplayName,
			Slug:                  cslug,
			Level:                 level,
			TotalFee:              c.Fees.Total,
			TotalFeeDisplay:       core.FormatFee(c.Fees.Total),
			Seats:                 c.Seats,
			EligibilityExams:      exams,
			AveragePackage:        c.Placement.AveragePackage,
			AveragePackageDisplay: core.FormatFee(c.Placement.AveragePackage),
			URL:                   "/institutes/" + inst.Slug + "/courses/" + cslug,
			Programme:             progSummary,
		}
		m.courses = append(m.courses, course)

		m.courseEntries = append(m.courseEntries, trieEntry{
			text: courseName,
			rec: index.Suggestion{
				Key:   instKey + ":" + pslug + ":" + cslug,
				Id:    inst.Id,
				Slug:  cslug,
				Name:  courseName,
				Logo:  inst.Logo,
				City:  inst.City,
				State: inst.State,
			},
		})

		m.addFacet(index.FacetLevel, level)
		m.addFacet(index.FacetCourse, c.Degree)
		m.addKeywords(c.Degree)

		if indexed < sampleCourseCount {
			prog.SampleCourses = append(prog.SampleCourses, core.CourseSummary{
				Degree:      c.Degree,
				DisplayName: c.DisplayName,
				Slug:        cslug,
				Level:       level,
			})
		}
		indexed++
		inst.TotalCourses++
	}
	if extra := indexed - sampleCourseCount; extra > 0 {
		prog.MoreCourses = extra
	}

	m.programmes = append(m.programmes, prog)
}
