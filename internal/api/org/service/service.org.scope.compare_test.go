// Package orgsvc - Test các hàm so sánh/ghép thuần của scope resolver.
package orgsvc

import (
	"testing"

	models "salesverse/internal/api/org/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestParseLevelCode(t *testing.T) {
	cases := []struct {
		code  string
		value int
		ok    bool
	}{
		{"1", 1, true},
		{"05", 5, true},
		{"  20  ", 20, true},
		{"", 0, false},
		{"   ", 0, false},
		{"-3", 0, false},
		{"+3", 0, false},
		{"A1", 0, false},
		{"1.5", 0, false},
		{"1 0", 0, false},
	}
	for _, tc := range cases {
		value, ok := ParseLevelCode(tc.code)
		if ok != tc.ok {
			t.Errorf("ParseLevelCode(%q): ok = %v, muốn %v", tc.code, ok, tc.ok)
			continue
		}
		if ok && value != tc.value {
			t.Errorf("ParseLevelCode(%q) = %d, muốn %d", tc.code, value, tc.value)
		}
	}
}

func TestNormalizeLevelCode(t *testing.T) {
	if got := NormalizeLevelCode("  ab01 "); got != "AB01" {
		t.Errorf("NormalizeLevelCode trả về %q, muốn %q", got, "AB01")
	}
}

func newNode(code string, order int) models.Hierarchy {
	return models.Hierarchy{
		ID:        primitive.NewObjectID(),
		Name:      "Node " + code,
		LevelCode: code,
		Order:     order,
	}
}

func TestNodesBelowLevelCode_StrictlyLowerAscending(t *testing.T) {
	nodes := []models.Hierarchy{newNode("5", 0), newNode("1", 0), newNode("3", 0)}

	below := NodesBelowLevelCode(nodes, "5")
	if len(below) != 2 {
		t.Fatalf("agent ở cấp 5 phải thấy 2 node thấp hơn, nhận được %d", len(below))
	}
	if below[0].LevelCode != "1" || below[1].LevelCode != "3" {
		t.Errorf("kết quả phải xếp tăng dần theo levelCode, nhận được [%s, %s]", below[0].LevelCode, below[1].LevelCode)
	}

	// Cấp thấp nhất không thấy node nào
	if got := NodesBelowLevelCode(nodes, "1"); len(got) != 0 {
		t.Errorf("agent ở cấp thấp nhất phải nhận danh sách rỗng, nhận được %d node", len(got))
	}
}

func TestNodesBelowLevelCode_NumericNotLexicographic(t *testing.T) {
	// "10" > "9" về mặt số dù "10" < "9" theo thứ tự chuỗi
	nodes := []models.Hierarchy{newNode("9", 0), newNode("10", 0)}
	below := NodesBelowLevelCode(nodes, "10")
	if len(below) != 1 || below[0].LevelCode != "9" {
		t.Errorf("so sánh phải theo giá trị số: dưới '10' chỉ có '9', nhận được %d node", len(below))
	}
}

func TestNodesBelowLevelCode_UnparseableExcluded(t *testing.T) {
	nodes := []models.Hierarchy{newNode("1", 0), newNode("ABC", 0), newNode("3", 0)}
	below := NodesBelowLevelCode(nodes, "5")
	if len(below) != 2 {
		t.Errorf("node có levelCode không parse được phải bị loại, nhận được %d node", len(below))
	}
	for _, n := range below {
		if n.LevelCode == "ABC" {
			t.Error("node 'ABC' không được xuất hiện trong kết quả")
		}
	}

	// limitCode không parse được: không so sánh được với node nào
	if got := NodesBelowLevelCode(nodes, "XYZ"); len(got) != 0 {
		t.Errorf("limitCode không parse được phải cho kết quả rỗng, nhận được %d node", len(got))
	}
}

func TestNodesBelowLevelCode_SkipsDeleted(t *testing.T) {
	deleted := newNode("2", 0)
	deleted.IsDeleted = true
	nodes := []models.Hierarchy{newNode("1", 0), deleted}
	below := NodesBelowLevelCode(nodes, "5")
	if len(below) != 1 || below[0].LevelCode != "1" {
		t.Errorf("node đã xóa mềm phải bị loại, nhận được %d node", len(below))
	}
}

func TestNodesAtOrBelowOrder(t *testing.T) {
	nodes := []models.Hierarchy{newNode("1", 10), newNode("2", 20), newNode("3", 30)}
	got := NodesAtOrBelowOrder(nodes, 20)
	if len(got) != 2 {
		t.Fatalf("order <= 20 phải có 2 node, nhận được %d", len(got))
	}
	for _, n := range got {
		if n.Order > 20 {
			t.Errorf("node order %d vượt ngưỡng 20", n.Order)
		}
	}
}

func TestBuildHierarchyScopeRows(t *testing.T) {
	n1 := newNode("1", 0)
	n2 := newNode("3", 0)
	designations := []models.Designation{
		{ID: primitive.NewObjectID(), HierarchyID: n2.ID, Name: "Trưởng nhóm"},
		{ID: primitive.NewObjectID(), HierarchyID: n1.ID, Name: "Tư vấn viên"},
		{ID: primitive.NewObjectID(), HierarchyID: n1.ID, Name: "Cộng tác viên"},
	}

	rows := BuildHierarchyScopeRows([]models.Hierarchy{n1, n2}, designations)
	if len(rows) != 3 {
		t.Fatalf("mỗi cặp (node, chức danh) một dòng: muốn 3, nhận được %d", len(rows))
	}
	// Thứ tự node giữ nguyên, chức danh trong node xếp theo tên
	if rows[0].DesignationName != "Cộng tác viên" || rows[1].DesignationName != "Tư vấn viên" {
		t.Errorf("chức danh trong cùng node phải xếp theo tên, nhận được [%s, %s]", rows[0].DesignationName, rows[1].DesignationName)
	}
	if rows[2].HierarchyID != n2.ID.Hex() || rows[2].DesignationName != "Trưởng nhóm" {
		t.Errorf("dòng cuối phải thuộc node thứ hai, nhận được %+v", rows[2])
	}
	if rows[0].HierarchyLevelCode != "1" || rows[0].HierarchyName != n1.Name {
		t.Errorf("dòng kết quả thiếu thông tin node: %+v", rows[0])
	}
}

func TestBuildHierarchyScopeRows_NodeWithoutDesignation(t *testing.T) {
	n1 := newNode("1", 0)
	rows := BuildHierarchyScopeRows([]models.Hierarchy{n1}, nil)
	if len(rows) != 0 {
		t.Errorf("node không có chức danh không sinh dòng nào, nhận được %d", len(rows))
	}
}

func TestJoinFullName(t *testing.T) {
	cases := []struct {
		parts []string
		want  string
	}{
		{[]string{"Nguyễn", "Văn", "An"}, "Nguyễn Văn An"},
		{[]string{"  Nguyễn ", "", " An"}, "Nguyễn An"},
		{[]string{"", "  ", ""}, ""},
		{[]string{"Lan"}, "Lan"},
	}
	for _, tc := range cases {
		if got := JoinFullName(tc.parts...); got != tc.want {
			t.Errorf("JoinFullName(%v) = %q, muốn %q", tc.parts, got, tc.want)
		}
	}
}

func TestAgentFullName(t *testing.T) {
	agent := models.Agent{FirstName: "Trần", MiddleName: "", LastName: "Bình"}
	if got := AgentFullName(agent); got != "Trần Bình" {
		t.Errorf("AgentFullName = %q, muốn %q", got, "Trần Bình")
	}
}

func TestBuildAgentScopeRows(t *testing.T) {
	agents := []models.Agent{
		{ID: primitive.NewObjectID(), FirstName: "Lê", LastName: "Hoa"},
	}
	rows := BuildAgentScopeRows(agents)
	if len(rows) != 1 {
		t.Fatalf("muốn 1 dòng, nhận được %d", len(rows))
	}
	if rows[0].AgentID != agents[0].ID.Hex() || rows[0].FullName != "Lê Hoa" {
		t.Errorf("dòng kết quả sai: %+v", rows[0])
	}
}

func TestParseVisibilityPolicy(t *testing.T) {
	if got := ParseVisibilityPolicy("none"); got != VisibilityNone {
		t.Errorf("ParseVisibilityPolicy(\"none\") = %v, muốn none", got)
	}
	if got := ParseVisibilityPolicy(" NONE "); got != VisibilityNone {
		t.Errorf("policy phải không phân biệt hoa thường và trim, nhận được %v", got)
	}
	// Giá trị không hợp lệ rơi về all
	for _, v := range []string{"", "all", "invalid"} {
		if got := ParseVisibilityPolicy(v); got != VisibilityAll {
			t.Errorf("ParseVisibilityPolicy(%q) = %v, muốn all", v, got)
		}
	}
}
