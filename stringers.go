// Copyright 2023 The flatgeobuf (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package geomem

import (
	"fmt"
	"strconv"
)

func (t DatasourceType) String() string {
	switch t {
	case Vector:
		return "Vector"
	case Raster:
		return "Raster"
	default:
		return "DatasourceType(" + strconv.Itoa(int(t)) + ")"
	}
}

func (t GeometryType) String() string {
	switch t {
	case PointGeometry:
		return "Point"
	case LineStringGeometry:
		return "LineString"
	case PolygonGeometry:
		return "Polygon"
	case Collection:
		return "Collection"
	default:
		return "GeometryType(" + strconv.Itoa(int(t)) + ")"
	}
}

func (d LayerDescriptor) String() string {
	return fmt.Sprintf("LayerDescriptor{Name:%s,Encoding:%s}", d.Name, d.Encoding)
}

func (s state) String() string {
	switch s {
	case created:
		return "created"
	case advancing:
		return "advancing"
	case exhausted:
		return "exhausted"
	default:
		return "state(0x" + strconv.FormatInt(int64(s), 16) + ")"
	}
}

func (ds *Datasource) String() string {
	return fmt.Sprintf("Datasource{Name:%s,Encoding:%s,BBoxCheck:%t,Size:%d,Extent:%s}",
		ds.desc.Name, ds.desc.Encoding, ds.bboxCheck, len(ds.features), ds.extent)
}

func (fs *Featureset) String() string {
	return fmt.Sprintf("Featureset{BBox:%s,BBoxCheck:%t,Pos:%d,State:%s}",
		fs.box, fs.bboxCheck, fs.pos, fs.state)
}
