// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of tabula

package view

import (
	"context"
	"fmt"

	"github.com/tabula/tabula/internal/model"
	"github.com/tabula/tabula/internal/story"
	"github.com/tabula/tabula/internal/ui"
)

// StoryView shows a story table.
type StoryView struct {
	*ui.Table

	story *story.Story
	env   *story.Env
	list  *model.AsyncList
}

var _ ui.Component = (*StoryView)(nil)

// NewStoryView returns a view for s.
func NewStoryView(s *story.Story, env *story.Env) *StoryView {
	return &StoryView{
		Table: ui.NewTable(s.Name),
		story: s,
		env:   env,
	}
}

// Init builds the story data source and binds the table to it.
func (v *StoryView) Init(ctx context.Context) error {
	if err := v.Table.Init(ctx); err != nil {
		return err
	}

	list, err := v.story.NewList(ctx, v.env)
	if err != nil {
		return err
	}
	v.list = list
	v.SetModel(list)
	if v.env != nil {
		v.SetLogger(v.env.Logger.With("view", v.story.Name))
	}

	return nil
}

// Stop aborts any load and detaches the table from its model.
func (v *StoryView) Stop() {
	v.Table.Stop()
	if v.list != nil {
		v.list.Abort()
		v.SetModel(nil)
	}
}

// Story returns the story shown.
func (v *StoryView) Story() *story.Story {
	return v.story
}

// List returns the story model.
func (v *StoryView) List() *model.AsyncList {
	return v.list
}

// Summary describes the story for the flash bar.
func (v *StoryView) Summary() string {
	return fmt.Sprintf("%s: %s", v.story.Title, v.story.Description)
}
