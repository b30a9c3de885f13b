package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jjam103/wedding-platform-v2-sub016/internal/domain"
	"github.com/jjam103/wedding-platform-v2-sub016/internal/repository"
)

type fakeContentRepo struct {
	pages    map[uint]domain.ContentPage
	sections map[uint]domain.Section
	existing map[string]bool
	nextID   uint
}

func newFakeContentRepo() *fakeContentRepo {
	return &fakeContentRepo{
		pages:    make(map[uint]domain.ContentPage),
		sections: make(map[uint]domain.Section),
		existing: make(map[string]bool),
		nextID:   1,
	}
}

func (f *fakeContentRepo) allow(refs ...domain.Reference) {
	for _, ref := range refs {
		f.existing[refKey(ref)] = true
	}
}

func (f *fakeContentRepo) addSection(section domain.Section) domain.Section {
	section.ID = f.nextID
	f.nextID++
	f.sections[section.ID] = section
	f.allow(domain.Reference{Type: section.PageType, ID: section.PageID})

	return section
}

func (f *fakeContentRepo) CreatePage(_ context.Context, page domain.ContentPage) (domain.ContentPage, error) {
	for _, p := range f.pages {
		if p.Slug == page.Slug {
			return domain.ContentPage{}, repository.ErrPageSlugExists
		}
	}

	page.ID = f.nextID
	f.nextID++
	f.pages[page.ID] = page
	f.allow(domain.Reference{Type: domain.ReferenceTypeContentPage, ID: page.ID})

	return page, nil
}

func (f *fakeContentRepo) FindPageByID(_ context.Context, id uint) (domain.ContentPage, error) {
	page, ok := f.pages[id]
	if !ok {
		return domain.ContentPage{}, repository.ErrPageNotFound
	}

	return page, nil
}

func (f *fakeContentRepo) FindPageBySlug(_ context.Context, slug string) (domain.ContentPage, error) {
	for _, p := range f.pages {
		if p.Slug == slug {
			return p, nil
		}
	}

	return domain.ContentPage{}, repository.ErrPageNotFound
}

func (f *fakeContentRepo) UpdatePage(_ context.Context, page domain.ContentPage) (domain.ContentPage, error) {
	if _, ok := f.pages[page.ID]; !ok {
		return domain.ContentPage{}, repository.ErrPageNotFound
	}
	f.pages[page.ID] = page

	return page, nil
}

func (f *fakeContentRepo) DeletePage(_ context.Context, id uint) error {
	delete(f.pages, id)

	return nil
}

func (f *fakeContentRepo) ListPages(_ context.Context) ([]domain.ContentPage, error) {
	out := make([]domain.ContentPage, 0, len(f.pages))
	for _, p := range f.pages {
		out = append(out, p)
	}

	return out, nil
}

func (f *fakeContentRepo) CreateSection(_ context.Context, section domain.Section) (domain.Section, error) {
	return f.addSection(section), nil
}

func (f *fakeContentRepo) UpdateSection(_ context.Context, section domain.Section) (domain.Section, error) {
	if _, ok := f.sections[section.ID]; !ok {
		return domain.Section{}, repository.ErrSectionNotFound
	}
	f.sections[section.ID] = section

	return section, nil
}

func (f *fakeContentRepo) FindSectionByID(_ context.Context, id uint) (domain.Section, error) {
	section, ok := f.sections[id]
	if !ok {
		return domain.Section{}, repository.ErrSectionNotFound
	}

	return section, nil
}

func (f *fakeContentRepo) DeleteSection(_ context.Context, id uint) error {
	delete(f.sections, id)

	return nil
}

func (f *fakeContentRepo) ListSectionsByPage(_ context.Context, pageType string, pageID uint) ([]domain.Section, error) {
	var out []domain.Section
	for id := uint(1); id < f.nextID; id++ {
		s, ok := f.sections[id]
		if ok && s.PageType == pageType && s.PageID == pageID {
			out = append(out, s)
		}
	}

	return out, nil
}

func (f *fakeContentRepo) ReferenceExists(_ context.Context, ref domain.Reference) (bool, error) {
	return f.existing[refKey(ref)], nil
}

func TestContentService_ValidateReferences(t *testing.T) {
	repo := newFakeContentRepo()
	repo.allow(
		domain.Reference{Type: domain.ReferenceTypeEvent, ID: 1},
		domain.Reference{Type: domain.ReferenceTypeLocation, ID: 3},
	)

	svc := NewContentService(repo)

	valid, err := svc.ValidateReferences(context.Background(), []domain.Reference{
		{Type: domain.ReferenceTypeEvent, ID: 1},
		{Type: domain.ReferenceTypeLocation, ID: 3},
	})
	require.NoError(t, err)
	assert.True(t, valid.Valid)
	assert.Empty(t, valid.BrokenReferences)

	// A deleted activity and an event/location ID mixup both count as broken.
	invalid, err := svc.ValidateReferences(context.Background(), []domain.Reference{
		{Type: domain.ReferenceTypeEvent, ID: 1},
		{Type: domain.ReferenceTypeActivity, ID: 9},
		{Type: domain.ReferenceTypeLocation, ID: 1},
	})
	require.NoError(t, err)
	assert.False(t, invalid.Valid)
	require.Len(t, invalid.BrokenReferences, 2)
	assert.Equal(t, domain.ReferenceTypeActivity, invalid.BrokenReferences[0].Type)
	assert.Equal(t, domain.ReferenceTypeLocation, invalid.BrokenReferences[1].Type)
}

func TestContentService_CreateSection_BrokenReference(t *testing.T) {
	svc := NewContentService(newFakeContentRepo())

	_, err := svc.CreateSection(context.Background(), domain.Section{
		PageType: domain.ReferenceTypeContentPage,
		PageID:   1,
		References: []domain.Reference{
			{Type: domain.ReferenceTypeEvent, ID: 5},
		},
	})
	require.ErrorIs(t, err, ErrBrokenReference)
}

func TestContentService_CreateSection_SelfReference(t *testing.T) {
	repo := newFakeContentRepo()
	page, err := NewContentService(repo).CreatePage(context.Background(), domain.ContentPage{
		Slug:  "travel",
		Title: "Travel",
	})
	require.NoError(t, err)

	svc := NewContentService(repo)

	_, err = svc.CreateSection(context.Background(), domain.Section{
		PageType: domain.ReferenceTypeContentPage,
		PageID:   page.ID,
		References: []domain.Reference{
			{Type: domain.ReferenceTypeContentPage, ID: page.ID},
		},
	})
	require.ErrorIs(t, err, ErrCircularReference)
}

func TestContentService_CreateSection_TwoPageCycle(t *testing.T) {
	repo := newFakeContentRepo()
	svc := NewContentService(repo)

	travel, err := svc.CreatePage(context.Background(), domain.ContentPage{Slug: "travel", Title: "Travel"})
	require.NoError(t, err)
	lodging, err := svc.CreatePage(context.Background(), domain.ContentPage{Slug: "lodging", Title: "Lodging"})
	require.NoError(t, err)

	_, err = svc.CreateSection(context.Background(), domain.Section{
		PageType: domain.ReferenceTypeContentPage,
		PageID:   travel.ID,
		References: []domain.Reference{
			{Type: domain.ReferenceTypeContentPage, ID: lodging.ID},
		},
	})
	require.NoError(t, err)

	// Closing the loop from lodging back to travel must be refused.
	_, err = svc.CreateSection(context.Background(), domain.Section{
		PageType: domain.ReferenceTypeContentPage,
		PageID:   lodging.ID,
		References: []domain.Reference{
			{Type: domain.ReferenceTypeContentPage, ID: travel.ID},
		},
	})
	require.ErrorIs(t, err, ErrCircularReference)
}

func TestContentService_CreateSection_DeepChainStaysAcyclic(t *testing.T) {
	repo := newFakeContentRepo()
	svc := NewContentService(repo)

	var pages []domain.ContentPage
	for _, slug := range []string{"a", "b", "c", "d"} {
		page, err := svc.CreatePage(context.Background(), domain.ContentPage{Slug: slug, Title: slug})
		require.NoError(t, err)
		pages = append(pages, page)
	}

	// a -> b -> c -> d is fine.
	for i := 0; i < len(pages)-1; i++ {
		_, err := svc.CreateSection(context.Background(), domain.Section{
			PageType: domain.ReferenceTypeContentPage,
			PageID:   pages[i].ID,
			References: []domain.Reference{
				{Type: domain.ReferenceTypeContentPage, ID: pages[i+1].ID},
			},
		})
		require.NoError(t, err)
	}

	// d -> a closes the loop through the whole chain.
	_, err := svc.CreateSection(context.Background(), domain.Section{
		PageType: domain.ReferenceTypeContentPage,
		PageID:   pages[3].ID,
		References: []domain.Reference{
			{Type: domain.ReferenceTypeContentPage, ID: pages[0].ID},
		},
	})
	require.ErrorIs(t, err, ErrCircularReference)
}

func TestContentService_SameIDDifferentTypeIsNotACycle(t *testing.T) {
	repo := newFakeContentRepo()
	repo.allow(domain.Reference{Type: domain.ReferenceTypeEvent, ID: 1})
	svc := NewContentService(repo)

	page, err := svc.CreatePage(context.Background(), domain.ContentPage{Slug: "schedule", Title: "Schedule"})
	require.NoError(t, err)
	require.Equal(t, uint(1), page.ID)

	// An event with the page's own numeric ID is a different node.
	_, err = svc.CreateSection(context.Background(), domain.Section{
		PageType: domain.ReferenceTypeContentPage,
		PageID:   page.ID,
		References: []domain.Reference{
			{Type: domain.ReferenceTypeEvent, ID: 1},
		},
	})
	require.NoError(t, err)
}

func TestContentService_DetectCircularReferences(t *testing.T) {
	repo := newFakeContentRepo()
	svc := NewContentService(repo)

	travel, err := svc.CreatePage(context.Background(), domain.ContentPage{Slug: "travel", Title: "Travel"})
	require.NoError(t, err)
	lodging, err := svc.CreatePage(context.Background(), domain.ContentPage{Slug: "lodging", Title: "Lodging"})
	require.NoError(t, err)

	_, err = svc.CreateSection(context.Background(), domain.Section{
		PageType: domain.ReferenceTypeContentPage,
		PageID:   travel.ID,
		References: []domain.Reference{
			{Type: domain.ReferenceTypeContentPage, ID: lodging.ID},
		},
	})
	require.NoError(t, err)

	acyclic, err := svc.DetectCircularReferences(context.Background(), domain.ReferenceTypeContentPage, travel.ID)
	require.NoError(t, err)
	assert.False(t, acyclic)

	// Plant the back edge directly in the store, bypassing the service gate.
	repo.addSection(domain.Section{
		PageType: domain.ReferenceTypeContentPage,
		PageID:   lodging.ID,
		References: []domain.Reference{
			{Type: domain.ReferenceTypeContentPage, ID: travel.ID},
		},
	})

	cyclic, err := svc.DetectCircularReferences(context.Background(), domain.ReferenceTypeContentPage, travel.ID)
	require.NoError(t, err)
	assert.True(t, cyclic)
}

func TestContentService_CreatePage_DuplicateSlug(t *testing.T) {
	svc := NewContentService(newFakeContentRepo())

	_, err := svc.CreatePage(context.Background(), domain.ContentPage{Slug: "travel", Title: "Travel"})
	require.NoError(t, err)

	_, err = svc.CreatePage(context.Background(), domain.ContentPage{Slug: "travel", Title: "Travel Again"})
	require.ErrorIs(t, err, ErrPageSlugExists)
}
