package authz

import (
	"fmt"
	"strings"
	"testing"

	"github.com/wpc41205/my-personal-blog-project/internal/constants"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupAuthzServiceTest(t *testing.T) *Service {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	svc, err := NewService(db)
	if err != nil {
		t.Fatalf("new authz service failed: %v", err)
	}
	if err := svc.BootstrapBuiltinRoles(); err != nil {
		t.Fatalf("bootstrap roles failed: %v", err)
	}
	return svc
}

func TestEditorCanManageContentOnly(t *testing.T) {
	svc := setupAuthzServiceTest(t)
	if err := svc.SetAdminRoles(1, []string{constants.AdminRoleEditor}); err != nil {
		t.Fatalf("set admin roles failed: %v", err)
	}

	allow, err := svc.EnforceAdmin(1, "/api/v1/admin/posts/42", "PUT")
	if err != nil {
		t.Fatalf("enforce posts failed: %v", err)
	}
	if !allow {
		t.Fatal("editor should manage posts")
	}

	allow, err = svc.EnforceAdmin(1, "/api/v1/admin/admins", "POST")
	if err != nil {
		t.Fatalf("enforce admins failed: %v", err)
	}
	if allow {
		t.Fatal("editor must not manage admin accounts")
	}
}

func TestSuperRoleCoversEverything(t *testing.T) {
	svc := setupAuthzServiceTest(t)
	if err := svc.SetAdminRoles(2, []string{constants.AdminRoleSuper}); err != nil {
		t.Fatalf("set admin roles failed: %v", err)
	}

	for _, object := range []string{"/api/v1/admin/posts", "/api/v1/admin/admins", "/api/v1/admin/notifications"} {
		allow, err := svc.EnforceAdmin(2, object, "POST")
		if err != nil {
			t.Fatalf("enforce %s failed: %v", object, err)
		}
		if !allow {
			t.Fatalf("super role denied on %s", object)
		}
	}
}

func TestSetAdminRolesOverride(t *testing.T) {
	svc := setupAuthzServiceTest(t)
	if err := svc.SetAdminRoles(3, []string{constants.AdminRoleSuper}); err != nil {
		t.Fatalf("set super role failed: %v", err)
	}
	if err := svc.SetAdminRoles(3, []string{constants.AdminRoleEditor}); err != nil {
		t.Fatalf("override role failed: %v", err)
	}

	roles, err := svc.GetAdminRoles(3)
	if err != nil {
		t.Fatalf("get admin roles failed: %v", err)
	}
	if len(roles) != 1 || roles[0] != "role:"+constants.AdminRoleEditor {
		t.Fatalf("unexpected roles: %v", roles)
	}

	allow, err := svc.EnforceAdmin(3, "/api/v1/admin/admins", "POST")
	if err != nil {
		t.Fatalf("enforce failed: %v", err)
	}
	if allow {
		t.Fatal("old role should be revoked after override")
	}
}

func TestNormalizeObjectStripsAPIPrefix(t *testing.T) {
	if got := NormalizeObject("/api/v1/admin/posts"); got != "/admin/posts" {
		t.Fatalf("unexpected object: %s", got)
	}
	if got := NormalizeObject("admin/posts"); got != "/admin/posts" {
		t.Fatalf("unexpected object: %s", got)
	}
	if got := NormalizeObject(""); got != "/" {
		t.Fatalf("unexpected object: %s", got)
	}
}
