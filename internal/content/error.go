package content

import "errors"

var (
	ErrShopNowNotFound   = errors.New("no shop now data found")
	ErrInstagramNotFound = errors.New("no instagram data found")
)
