package resource

import (
	"github.com/nubificus/vaccel-rpc-go/rpc/vaccelpb"
	"github.com/nubificus/vaccel-rpc-go/vaccelerr"
)

// FromRequest builds a Kind and its backing payload from a
// RegisterResourceRequest. Files take precedence over paths when a
// request carries both; registering with neither is an error.
// TF_SAVED_MODEL is built from files only: a request for it that carries
// paths and no files is rejected.
func FromRequest(req *vaccelpb.RegisterResourceRequest) (Kind, []byte, error) {
	files := req.GetFiles()
	paths := req.GetPaths()

	switch req.GetResourceType() {
	case vaccelpb.ResourceType_SHARED_OBJECT:
		path, data, err := pickOne(files, paths)
		if err != nil {
			return nil, nil, err
		}
		return &SharedObject{Path: path, Bytes: data}, data, nil
	case vaccelpb.ResourceType_SINGLE_MODEL:
		path, data, err := pickOne(files, paths)
		if err != nil {
			return nil, nil, err
		}
		return &SingleModel{Path: path, Bytes: data}, data, nil
	case vaccelpb.ResourceType_TORCH_MODEL:
		path, data, err := pickOne(files, paths)
		if err != nil {
			return nil, nil, err
		}
		return &TorchModel{Path: path, Bytes: data}, data, nil
	case vaccelpb.ResourceType_TFLITE_MODEL:
		path, data, err := pickOne(files, paths)
		if err != nil {
			return nil, nil, err
		}
		return &TFLiteModel{Path: path, Bytes: data}, data, nil
	case vaccelpb.ResourceType_TF_SAVED_MODEL:
		if len(files) == 0 {
			return nil, nil, vaccelerr.NewProtocolError("TF_SAVED_MODEL requires files, got none")
		}
		all := make(map[string][]byte, len(files))
		var flat []byte
		for _, f := range files {
			all[f.GetName()] = f.GetData()
			flat = append(flat, f.GetData()...)
		}
		return &TFSavedModel{Files: all}, flat, nil
	default:
		return nil, nil, vaccelerr.NewProtocolError("unsupported resource type %v", req.GetResourceType())
	}
}

// pickOne resolves the files-take-precedence-over-paths rule for
// resource kinds backed by a single payload: if any File is present its
// data wins, otherwise the first path is used as a reference with no
// inline bytes, and if neither is present registration fails.
func pickOne(files []*vaccelpb.File, paths []string) (path string, data []byte, err error) {
	if len(files) > 0 {
		f := files[0]
		return f.GetPath(), f.GetData(), nil
	}
	if len(paths) > 0 {
		return paths[0], nil, nil
	}
	return "", nil, vaccelerr.NewProtocolError("resource registration requires files or paths, got neither")
}
