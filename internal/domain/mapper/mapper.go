package mapper

import (
	"image-resizer/internal/domain/dto"
	"image-resizer/internal/domain/entities"
	"image-resizer/pkg/constants"
)

func VariantToDTO(v entities.Variant) dto.VariantDTO {
	out := dto.VariantDTO{
		Width:    v.Resolution.Width,
		Height:   v.Resolution.Height,
		Key:      v.Key,
		Location: v.Location,
		Size:     v.Size,
		Status:   constants.StatusCompleted,
	}
	if v.Err != nil {
		out.Status = constants.StatusFailed
		out.Error = v.Err.Error()
	}
	return out
}

func ReportToDTO(r *entities.Report) dto.ReportDTO {
	out := dto.ReportDTO{
		Source:    r.Source,
		Subfolder: r.Subfolder,
		Bytes:     r.Bytes,
		Reason:    r.Reason,
		Succeeded: r.Succeeded(),
		Failed:    r.Failed(),
	}
	switch {
	case r.Skipped:
		out.Status = constants.StatusSkipped
	case r.Failed() > 0:
		out.Status = constants.StatusFailed
	default:
		out.Status = constants.StatusCompleted
	}
	for _, v := range r.Variants {
		out.Variants = append(out.Variants, VariantToDTO(v))
	}
	return out
}

func ReportsToResponse(records int, reports []*entities.Report) dto.InvocationResponse {
	resp := dto.InvocationResponse{
		Records: records,
		Reports: make([]dto.ReportDTO, 0, len(reports)),
	}
	for _, r := range reports {
		resp.Reports = append(resp.Reports, ReportToDTO(r))
	}
	return resp
}
