package actions

import (
	"aitools/backend/internal/catalog"
	"aitools/backend/internal/prompt"
	apperrors "aitools/backend/pkg/errors"
)

type universalParams struct {
	ToolID string `json:"tool_id" validate:"notblank"`
	Input  string `json:"input" validate:"notblank"`

	tool catalog.Tool
}

func universalActions() []action {
	return []action{
		textAction[universalParams, string]{
			name:        UniversalAction,
			category:    "universal",
			description: "Run any catalog tool through its category template",
			mode:        ModeFreeText,
			failure:     "Failed to generate output",
			defaults:    func() universalParams { return universalParams{} },
			prepare: func(d *Dispatcher, p *universalParams) error {
				if d.catalog == nil {
					return apperrors.NewToolNotFound(p.ToolID)
				}
				tool, err := d.catalog.MustTool(p.ToolID)
				if err != nil {
					return err
				}
				p.tool = tool
				return nil
			},
			prompt: func(p universalParams) string {
				return prompt.Resolve(p.ToolID, p.tool.Title, p.tool.Description, p.tool.Category, p.Input)
			},
			normalize: asText,
		},
	}
}
