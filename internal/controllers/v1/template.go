package v1

import (
	"net/http"

	"github.com/budget-rule/backend/internal/httputil"
	"github.com/budget-rule/backend/internal/store"
	"github.com/gin-gonic/gin"
)

// RegisterTemplateRoutes registers the routes for templates with
// the RouterGroup that is passed.
func (co Controller) RegisterTemplateRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", co.OptionsTemplateList)
		r.GET("", co.GetTemplates)
		r.POST("", co.CreateTemplate)
	}

	// Template with ID
	{
		r.OPTIONS("/:id", co.OptionsTemplateDetail)
		r.GET("/:id", co.GetTemplate)
		r.PUT("/:id", co.ReplaceTemplate)
		r.DELETE("/:id", co.DeleteTemplate)
		r.OPTIONS("/:id/duplicate", co.OptionsTemplateDuplicate)
		r.POST("/:id/duplicate", co.DuplicateTemplate)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Templates
// @Success		204
// @Router			/v1/templates [options]
func (co Controller) OptionsTemplateList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Templates
// @Success		204
// @Failure		400	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/templates/{id} [options]
func (co Controller) OptionsTemplateDetail(c *gin.Context) {
	_, err := pathID(c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPutDelete(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Templates
// @Success		204
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/templates/{id}/duplicate [options]
func (co Controller) OptionsTemplateDuplicate(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Create template
// @Description	Creates a new template. If no percentages are set, 50/30/20 is used.
// @Tags			Templates
// @Accept			json
// @Produce		json
// @Success		201			{object}	TemplateResponse
// @Failure		400			{object}	TemplateResponse
// @Failure		401			{object}	TemplateResponse
// @Failure		500			{object}	TemplateResponse
// @Param			template	body		TemplateEditable	true	"Template"
// @Router			/v1/templates [post]
func (co Controller) CreateTemplate(c *gin.Context) {
	var editable TemplateEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TemplateResponse{
			Error: &s,
		})
		return
	}

	t, err := co.Service.CreateTemplate(c.Request.Context(), identity(c), editable.model())
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TemplateResponse{
			Error: &s,
		})
		return
	}

	data := newTemplate(c, t)
	c.JSON(http.StatusCreated, TemplateResponse{Data: &data})
}

// @Summary		List templates
// @Description	Returns the templates of the caller, newest first
// @Tags			Templates
// @Produce		json
// @Success		200		{object}	TemplateListResponse
// @Failure		401		{object}	TemplateListResponse
// @Failure		500		{object}	TemplateListResponse
// @Param			name	query		string	false	"Filter by name, supports glob patterns"
// @Router			/v1/templates [get]
func (co Controller) GetTemplates(c *gin.Context) {
	var filter TemplateQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.ShouldBindQuery(&filter)

	templates, err := co.Service.ListTemplates(c.Request.Context(), identity(c), store.TemplateFilter{Name: filter.Name})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TemplateListResponse{
			Error: &s,
		})
		return
	}

	data := make([]Template, 0, len(templates))
	for _, t := range templates {
		data = append(data, newTemplate(c, t))
	}

	c.JSON(http.StatusOK, TemplateListResponse{Data: data})
}

// @Summary		Get template
// @Description	Returns a specific template
// @Tags			Templates
// @Produce		json
// @Success		200	{object}	TemplateResponse
// @Failure		400	{object}	TemplateResponse
// @Failure		401	{object}	TemplateResponse
// @Failure		403	{object}	TemplateResponse
// @Failure		404	{object}	TemplateResponse
// @Failure		500	{object}	TemplateResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/templates/{id} [get]
func (co Controller) GetTemplate(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TemplateResponse{
			Error: &s,
		})
		return
	}

	t, err := co.Service.GetTemplate(c.Request.Context(), identity(c), id)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TemplateResponse{
			Error: &s,
		})
		return
	}

	data := newTemplate(c, t)
	c.JSON(http.StatusOK, TemplateResponse{Data: &data})
}

// @Summary		Replace template
// @Description	Replaces all editable fields of an existing template
// @Tags			Templates
// @Accept			json
// @Produce		json
// @Success		200			{object}	TemplateResponse
// @Failure		400			{object}	TemplateResponse
// @Failure		401			{object}	TemplateResponse
// @Failure		403			{object}	TemplateResponse
// @Failure		404			{object}	TemplateResponse
// @Failure		500			{object}	TemplateResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			template	body		TemplateEditable	true	"Template"
// @Router			/v1/templates/{id} [put]
func (co Controller) ReplaceTemplate(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TemplateResponse{
			Error: &s,
		})
		return
	}

	var editable TemplateEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TemplateResponse{
			Error: &s,
		})
		return
	}

	t, err := co.Service.ReplaceTemplate(c.Request.Context(), identity(c), id, editable.model())
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TemplateResponse{
			Error: &s,
		})
		return
	}

	data := newTemplate(c, t)
	c.JSON(http.StatusOK, TemplateResponse{Data: &data})
}

// @Summary		Delete template
// @Description	Deletes a template. Budgets created from it are not changed.
// @Tags			Templates
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		401	{object}	httpError
// @Failure		403	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/templates/{id} [delete]
func (co Controller) DeleteTemplate(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = co.Service.DeleteTemplate(c.Request.Context(), identity(c), id)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary		Duplicate template
// @Description	Creates a copy of a template. The name of the copy has " (Copy)" appended.
// @Tags			Templates
// @Produce		json
// @Success		201	{object}	TemplateResponse
// @Failure		400	{object}	TemplateResponse
// @Failure		401	{object}	TemplateResponse
// @Failure		403	{object}	TemplateResponse
// @Failure		404	{object}	TemplateResponse
// @Failure		500	{object}	TemplateResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/templates/{id}/duplicate [post]
func (co Controller) DuplicateTemplate(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TemplateResponse{
			Error: &s,
		})
		return
	}

	t, err := co.Service.DuplicateTemplate(c.Request.Context(), identity(c), id)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TemplateResponse{
			Error: &s,
		})
		return
	}

	data := newTemplate(c, t)
	c.JSON(http.StatusCreated, TemplateResponse{Data: &data})
}
