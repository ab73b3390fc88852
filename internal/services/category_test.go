package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCategoriesOrderedByID(t *testing.T) {
	db := newTestDB(t)
	svc := NewCategoryService(db)

	categories, err := svc.ListCategories()
	require.NoError(t, err)
	assert.Empty(t, categories)

	seedCategory(t, db, "Science")
	seedCategory(t, db, "Art")

	categories, err = svc.ListCategories()
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "Science", categories[0].Type)
	assert.Equal(t, "Art", categories[1].Type)
	assert.Less(t, categories[0].ID, categories[1].ID)
}

func TestGetCategory(t *testing.T) {
	db := newTestDB(t)
	svc := NewCategoryService(db)
	science := seedCategory(t, db, "Science")

	category, err := svc.GetCategory(science.ID)
	require.NoError(t, err)
	assert.Equal(t, science, *category)

	_, err = svc.GetCategory(science.ID + 100)
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestGetCategoryWithQuestions(t *testing.T) {
	db := newTestDB(t)
	svc := NewCategoryService(db)
	science := seedCategory(t, db, "Science")
	art := seedCategory(t, db, "Art")
	h2o := seedQuestion(t, db, "What is H2O?", science.ID)
	seedQuestion(t, db, "Who painted the Mona Lisa?", art.ID)
	fleming := seedQuestion(t, db, "Who discovered penicillin?", science.ID)

	category, questions, err := svc.GetCategoryWithQuestions(science.ID)
	require.NoError(t, err)
	assert.Equal(t, "Science", category.Type)
	assert.Equal(t, []uint{h2o.ID, fleming.ID}, ids(questions))
}

func TestGetCategoryWithQuestionsDistinguishesMissingFromEmpty(t *testing.T) {
	db := newTestDB(t)
	svc := NewCategoryService(db)
	empty := seedCategory(t, db, "Sports")

	category, _, err := svc.GetCategoryWithQuestions(empty.ID)
	assert.ErrorIs(t, err, ErrCategoryEmpty)
	require.NotNil(t, category)
	assert.Equal(t, "Sports", category.Type)

	_, _, err = svc.GetCategoryWithQuestions(empty.ID + 1)
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}
