package store

import jsoniter "github.com/json-iterator/go"

// json encodes every stored file; output matches encoding/json.
var json = jsoniter.ConfigCompatibleWithStandardLibrary
