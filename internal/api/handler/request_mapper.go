package handler

import "github.com/wastemap/collection-api/internal/core/ports"

// toCreateInput maps the HTTP create payload to the service DTO.
func toCreateInput(r createRequestRequest) ports.CreateRequestInput {
	return ports.CreateRequestInput{
		WasteType:   r.WasteType,
		Description: r.Description,
		Location: ports.LocationInput{
			Latitude:  *r.Location.Latitude,
			Longitude: *r.Location.Longitude,
			Address:   r.Location.Address,
		},
	}
}

// toUpdateInput maps the HTTP partial update payload to the service DTO.
func toUpdateInput(r updateRequestRequest) ports.UpdateRequestInput {
	in := ports.UpdateRequestInput{
		WasteType:   r.WasteType,
		Description: r.Description,
	}
	if r.Location != nil {
		in.Latitude = r.Location.Latitude
		in.Longitude = r.Location.Longitude
		in.Address = r.Location.Address
	}
	return in
}

// toRequestResponse maps a service record to the wire shape.
func toRequestResponse(rec *ports.RequestRecord) requestResponse {
	return requestResponse{
		ID:          rec.ID,
		OwnerID:     rec.OwnerID,
		WasteType:   rec.WasteType,
		Description: rec.Description,
		Location: locationResponse{
			Latitude:  rec.Location.Latitude,
			Longitude: rec.Location.Longitude,
			Address:   rec.Location.Address,
		},
		Status:     rec.Status,
		CreatedAt:  rec.CreatedAt,
		UpdatedAt:  rec.UpdatedAt,
		OwnerName:  rec.OwnerName,
		OwnerEmail: rec.OwnerEmail,
	}
}

func toListResponse(records []ports.RequestRecord) listRequestsResponse {
	data := make([]requestResponse, 0, len(records))
	for i := range records {
		data = append(data, toRequestResponse(&records[i]))
	}
	return listRequestsResponse{Data: data}
}
