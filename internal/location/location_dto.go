package location

type CreateLocationRequest struct {
	Name        string  `json:"location_name" binding:"required,min=1,max=100"`
	Description *string `json:"description"`
	Building    *string `json:"building"`
	Floor       *int    `json:"floor"`
}

type UpdateLocationRequest struct {
	Name        *string `json:"location_name" binding:"omitempty,min=1,max=100"`
	Description *string `json:"description"`
	Building    *string `json:"building"`
	Floor       *int    `json:"floor"`
}

// LocationResponse mirrors the legacy API shape. Description, building
// and floor are accepted on input but have no backing columns, so they
// always serialize as null.
type LocationResponse struct {
	LocationID  int     `json:"location_id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Building    *string `json:"building"`
	Floor       *int    `json:"floor"`
}
