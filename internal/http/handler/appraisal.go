package handler

import (
	"fmt"
	"io"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"appraisalapi/internal/model"
	"appraisalapi/internal/service"
)

// ProofImageField is the multipart field carrying the optional proof image.
const ProofImageField = "proofImage"

// SubmitAppraisal godoc
// @Summary      Submit a self-appraisal
// @Description  Records an appraisal. An attached proofImage is stored and referenced by a signed URL.
// @Tags         appraisals
// @Accept       mpfd
// @Produce      plain
// @Param        uid          formData  string  true   "Faculty uid"
// @Param        title        formData  string  true   "Title"
// @Param        category     formData  string  true   "Category"
// @Param        description  formData  string  true   "Description"
// @Param        date         formData  string  true   "Date (YYYY-MM-DD)"
// @Param        proofImage   formData  file    false  "Proof image"
// @Success      200          {string}  string  "Appraisal submitted successfully"
// @Failure      400          {string}  string  "Missing appraisal information"
// @Failure      500          {string}  string  "Submission failed: <reason>"
// @Router       /submitAppraisal [post]
func SubmitAppraisal(svc service.AppraisalService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// A body that is not multipart carries no image; its fields come from PostArgs.
		form, err := c.MultipartForm()
		if err != nil {
			form = nil
		}

		in := service.SubmitAppraisalInput{
			UID:         bodyValue(c, form, "uid"),
			Title:       bodyValue(c, form, "title"),
			Category:    bodyValue(c, form, "category"),
			Description: bodyValue(c, form, "description"),
			Date:        bodyValue(c, form, "date"),
		}

		if form != nil {
			if files := form.File[ProofImageField]; len(files) > 0 {
				img, err := readUpload(files[0])
				if err != nil {
					return writeText(c, fiber.StatusBadRequest, "Cannot read proof image")
				}
				in.Image = img
			}
		}

		if _, err := svc.Submit(c.UserContext(), in); err != nil {
			return writeServiceError(c, err, "Submission failed: ")
		}
		return writeText(c, fiber.StatusOK, "Appraisal submitted successfully")
	}
}

// GetAppraisals godoc
// @Summary      List a user's appraisals
// @Description  Filters by year substring, -MM- month, or exact date. Clauses combine per APPRAISAL_FILTER_MODE.
// @Tags         appraisals
// @Produce      json
// @Param        uid    query     string  true   "Faculty uid"
// @Param        year   query     string  false  "Year, e.g. 2024"
// @Param        month  query     string  false  "Two-digit month, e.g. 06"
// @Param        date   query     string  false  "Exact date, e.g. 2024-05-01"
// @Success      200    {array}   model.Appraisal
// @Failure      400    {string}  string  "User ID is required"
// @Failure      500    {string}  string  "Error fetching data: <reason>"
// @Router       /getAppraisals [get]
func GetAppraisals(svc service.AppraisalService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		q := service.AppraisalQuery{
			UID:   c.Query("uid"),
			Year:  c.Query("year"),
			Month: c.Query("month"),
			Date:  c.Query("date"),
		}

		items, err := svc.List(c.UserContext(), q)
		if err != nil {
			return writeServiceError(c, err, "Error fetching data: ")
		}
		return c.Status(fiber.StatusOK).JSON(items)
	}
}

// bodyValue reads a request body field, never the query string. The result is
// copied out of fasthttp's pooled buffers since it outlives the request.
func bodyValue(c *fiber.Ctx, form *multipart.Form, key string) string {
	if form != nil {
		if v := form.Value[key]; len(v) > 0 {
			return utils.CopyString(v[0])
		}
		return ""
	}
	return string(c.Request().PostArgs().Peek(key))
}

// readUpload buffers an uploaded file in memory.
func readUpload(fh *multipart.FileHeader) (*model.UploadedImage, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}

	ct := fh.Header.Get(fiber.HeaderContentType)
	if ct == "" {
		ct = "application/octet-stream"
	}
	return &model.UploadedImage{Data: data, Filename: fh.Filename, ContentType: ct}, nil
}
